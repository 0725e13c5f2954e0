package raffle

import (
	"time"

	"github.com/kgrady/raffled/internal/common/clock"
	"github.com/kgrady/raffled/internal/common/uuid"
	"github.com/kgrady/raffled/internal/models"
	"github.com/kgrady/raffled/internal/oracle"
	payoutRepo "github.com/kgrady/raffled/internal/repositories/payout"
	raffleRepo "github.com/kgrady/raffled/internal/repositories/raffle"
	"github.com/kgrady/raffled/internal/services/notify"
)

// Config holds the configuration for the raffle service
type Config struct {
	// RaffleID identifies the raffle instance this service owns
	RaffleID string

	// EntranceFee is the minimum payment per ticket, in minor currency
	// units. Immutable for the lifetime of the raffle.
	EntranceFee int64

	// Interval is the minimum time between a round's resolution and the
	// next draw. Immutable.
	Interval time.Duration

	// RaffleRepo persists the round state
	RaffleRepo raffleRepo.Repository

	// PayoutRepo is the ledger the pool is transferred through
	PayoutRepo payoutRepo.Repository

	// Oracle is the external randomness provider
	Oracle oracle.Client

	// Notifier publishes observable events, optional
	Notifier notify.Notifier

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates payout identifiers
	UUID uuid.UUID
}

type EnterInput struct {
	// PlayerID identifies the entrant
	PlayerID string

	// Amount is the payment in minor currency units
	Amount int64
}

type EnterOutput struct {
	// PlayerCount is the number of tickets in the round after the entry
	PlayerCount int

	// Pool is the round's balance after the entry
	Pool int64
}

type CheckUpkeepInput struct {
	// CheckData is opaque and passed through to PerformData untouched
	CheckData []byte
}

type CheckUpkeepOutput struct {
	// UpkeepNeeded is true when the round is ready for a draw
	UpkeepNeeded bool

	// PerformData is handed back to PerformUpkeep by the keeper
	PerformData []byte
}

type PerformUpkeepInput struct {
	// PerformData is the opaque value returned by CheckUpkeep, not
	// interpreted here
	PerformData []byte
}

type PerformUpkeepOutput struct {
	// RequestID identifies the outstanding randomness request
	RequestID string
}

type FulfillRandomnessInput struct {
	// RequestID correlates the fulfillment to the outstanding request
	RequestID string

	// RandomWord is the oracle's unpredictable value
	RandomWord uint64
}

type FulfillRandomnessOutput struct {
	// Winner is the selected player
	Winner string

	// Amount is the pool transferred to the winner
	Amount int64
}

type GetStatusInput struct {
}

type GetStatusOutput struct {
	State        models.RaffleState
	EntranceFee  int64
	Interval     time.Duration
	PlayerCount  int
	Pool         int64
	RecentWinner string
	LastDrawTime time.Time
}

type GetPlayerInput struct {
	Index int
}

type GetPlayerOutput struct {
	PlayerID string
}
