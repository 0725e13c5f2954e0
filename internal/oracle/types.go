package oracle

type RequestRandomWordsInput struct {
	// NumWords is how many random words to request
	NumWords uint32
}

type RequestRandomWordsOutput struct {
	// RequestID is the coordinator-assigned identifier for the request
	RequestID string
}
