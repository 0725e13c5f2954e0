package notify

type EntryRecordedInput struct {
	PlayerID    string
	Amount      int64
	PlayerCount int
	Pool        int64
}

type DrawRequestedInput struct {
	RequestID string
}

type WinnerPickedInput struct {
	Winner string
	Amount int64
}
