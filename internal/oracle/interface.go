package oracle

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/kgrady/raffled/internal/oracle Client

import (
	"context"
)

// Client defines the interface to the external randomness oracle.
//
// The protocol is two-phase: RequestRandomWords returns a coordinator-assigned
// request ID synchronously; the random words arrive later through the
// coordinator's callback, as an independent invocation correlated by that ID.
type Client interface {
	// RequestRandomWords asks the oracle for random words and returns the
	// request ID to correlate the eventual fulfillment
	RequestRandomWords(ctx context.Context, input *RequestRandomWordsInput) (*RequestRandomWordsOutput, error)
}
