package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/kgrady/raffled/internal/services/notify Notifier

import (
	"context"
)

// Notifier publishes the raffle's observable events. Delivery is best
// effort: implementations report their own failures and never block the
// operation that produced the event.
type Notifier interface {
	// EntryRecorded announces a new entry in the current round
	EntryRecorded(ctx context.Context, input *EntryRecordedInput)

	// DrawRequested announces that a randomness request went out
	DrawRequested(ctx context.Context, input *DrawRequestedInput)

	// WinnerPicked announces a resolved round
	WinnerPicked(ctx context.Context, input *WinnerPickedInput)
}
