package notify

import (
	"context"
)

// Multi fans events out to several notifiers
type Multi struct {
	notifiers []Notifier
}

// NewMulti creates a notifier that forwards each event to all the given
// notifiers in order
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// EntryRecorded forwards the event to all notifiers
func (m *Multi) EntryRecorded(ctx context.Context, input *EntryRecordedInput) {
	for _, n := range m.notifiers {
		n.EntryRecorded(ctx, input)
	}
}

// DrawRequested forwards the event to all notifiers
func (m *Multi) DrawRequested(ctx context.Context, input *DrawRequestedInput) {
	for _, n := range m.notifiers {
		n.DrawRequested(ctx, input)
	}
}

// WinnerPicked forwards the event to all notifiers
func (m *Multi) WinnerPicked(ctx context.Context, input *WinnerPickedInput) {
	for _, n := range m.notifiers {
		n.WinnerPicked(ctx, input)
	}
}
