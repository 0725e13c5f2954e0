package models

import (
	"time"
)

// Payout records a pool transfer to a round's winner
type Payout struct {
	// ID is the unique identifier for this payout
	ID string

	// RaffleID is the raffle the payout belongs to
	RaffleID string

	// RequestID is the randomness request that resolved the round
	RequestID string

	// PlayerID is the winner the pool was credited to
	PlayerID string

	// Amount is the pool size transferred, in minor currency units
	Amount int64

	// PaidAt is when the payout was recorded
	PaidAt time.Time
}
