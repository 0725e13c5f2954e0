package raffle

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/kgrady/raffled/internal/services/raffle Service

import "context"

// Service defines the interface for raffle operations
type Service interface {
	// Enter admits a paid entry into the current round
	Enter(ctx context.Context, input *EnterInput) (*EnterOutput, error)

	// CheckUpkeep reports whether the round is ready for a draw. It is
	// read-only and safe to call arbitrarily often.
	CheckUpkeep(ctx context.Context, input *CheckUpkeepInput) (*CheckUpkeepOutput, error)

	// PerformUpkeep closes the round and requests randomness from the
	// oracle
	PerformUpkeep(ctx context.Context, input *PerformUpkeepInput) (*PerformUpkeepOutput, error)

	// FulfillRandomness resolves the round with the oracle's random word,
	// pays out the pool and reopens the raffle
	FulfillRandomness(ctx context.Context, input *FulfillRandomnessInput) (*FulfillRandomnessOutput, error)

	// GetStatus returns a read-only snapshot of the raffle
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// GetPlayer returns the player at an index in the current round's
	// entry list
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
}
