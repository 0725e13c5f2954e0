package payout

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kgrady/raffled/internal/repositories/payout Repository

import (
	"context"
)

// Repository defines the interface for payout ledger data persistence
type Repository interface {
	// RecordPayout appends a payout record and credits the winner's balance
	RecordPayout(ctx context.Context, input *RecordPayoutInput) error

	// GetPlayerBalance retrieves the total credited balance for a player
	GetPlayerBalance(ctx context.Context, input *GetPlayerBalanceInput) (*GetPlayerBalanceOutput, error)

	// GetPayoutsForPlayer retrieves all payout records for a player
	GetPayoutsForPlayer(ctx context.Context, input *GetPayoutsForPlayerInput) (*GetPayoutsForPlayerOutput, error)
}
