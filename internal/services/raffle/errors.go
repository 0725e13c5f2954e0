package raffle

import (
	"errors"
	"fmt"

	"github.com/kgrady/raffled/internal/models"
)

// Define errors
var (
	ErrInsufficientPayment   = errors.New("payment below entrance fee")
	ErrRaffleNotOpen         = errors.New("raffle is not open for entries")
	ErrUpkeepNotReady        = errors.New("upkeep not needed")
	ErrUnknownRequest        = errors.New("unknown randomness request")
	ErrPayoutFailed          = errors.New("payout to winner failed")
	ErrPlayerIndexOutOfRange = errors.New("player index out of range")

	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilRaffleRepo = errors.New("raffle repository cannot be nil")
	ErrNilPayoutRepo = errors.New("payout repository cannot be nil")
	ErrNilOracle     = errors.New("oracle client cannot be nil")
	ErrNilClock      = errors.New("clock cannot be nil")
	ErrNilUUID       = errors.New("UUID generator cannot be nil")
)

// UpkeepNotReadyError reports why a draw could not start, with a snapshot
// of the values the decision was made on
type UpkeepNotReadyError struct {
	Pool        int64
	PlayerCount int
	State       models.RaffleState
}

// Error implements the error interface
func (e *UpkeepNotReadyError) Error() string {
	return fmt.Sprintf("upkeep not needed: pool=%d players=%d state=%s",
		e.Pool, e.PlayerCount, e.State)
}

// Unwrap lets callers match the error with errors.Is(err, ErrUpkeepNotReady)
func (e *UpkeepNotReadyError) Unwrap() error {
	return ErrUpkeepNotReady
}
