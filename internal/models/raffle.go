package models

import (
	"time"
)

// RaffleState represents the current phase of a raffle round
type RaffleState string

const (
	// RaffleStateOpen indicates the round is accepting entries
	RaffleStateOpen RaffleState = "open"

	// RaffleStateDrawing indicates a randomness request is outstanding
	// and no new entries are admitted
	RaffleStateDrawing RaffleState = "drawing"
)

// IsOpen returns true if the raffle is accepting entries
func (s RaffleState) IsOpen() bool {
	return s == RaffleStateOpen
}

// IsDrawing returns true if a draw is in flight
func (s RaffleState) IsDrawing() bool {
	return s == RaffleStateDrawing
}

// Raffle represents one recurring prize raffle and its current round
type Raffle struct {
	// ID is the unique identifier for the raffle
	ID string

	// State is the current phase of the round
	State RaffleState

	// Players holds one element per ticket sold this round, in entry order.
	// The same player may appear more than once.
	Players []string

	// Pool is the sum of all entrance payments this round, in minor
	// currency units
	Pool int64

	// OutstandingRequestID is the id of the in-flight randomness request,
	// empty unless State is drawing
	OutstandingRequestID string

	// RecentWinner is the winner of the last resolved round
	RecentWinner string

	// LastDrawTime is when the last round resolved, or when the raffle
	// was created for the first round
	LastDrawTime time.Time

	// CreatedAt is when the raffle was created
	CreatedAt time.Time

	// UpdatedAt is when the raffle was last updated
	UpdatedAt time.Time
}

// Clone returns a deep copy of the raffle
func (r *Raffle) Clone() *Raffle {
	if r == nil {
		return nil
	}

	cp := *r
	cp.Players = make([]string, len(r.Players))
	copy(cp.Players, r.Players)

	return &cp
}
