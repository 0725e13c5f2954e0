package notify

import (
	"context"

	"github.com/google/logger"
)

// Log writes raffle events to the application log. It is the default
// notifier for headless deployments.
type Log struct{}

// NewLog creates a new log notifier
func NewLog() *Log {
	return &Log{}
}

// EntryRecorded logs a new entry in the current round
func (l *Log) EntryRecorded(ctx context.Context, input *EntryRecordedInput) {
	logger.Infof("Entry recorded: player=%s amount=%d players=%d pool=%d",
		input.PlayerID, input.Amount, input.PlayerCount, input.Pool)
}

// DrawRequested logs an outgoing randomness request
func (l *Log) DrawRequested(ctx context.Context, input *DrawRequestedInput) {
	logger.Infof("Draw requested: request_id=%s", input.RequestID)
}

// WinnerPicked logs a resolved round
func (l *Log) WinnerPicked(ctx context.Context, input *WinnerPickedInput) {
	logger.Infof("Winner picked: winner=%s amount=%d", input.Winner, input.Amount)
}
