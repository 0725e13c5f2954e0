package raffle

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kgrady/raffled/internal/repositories/raffle Repository

import (
	"context"

	"github.com/kgrady/raffled/internal/models"
)

// Repository defines the interface for raffle data persistence
type Repository interface {
	// SaveRaffle persists a raffle
	SaveRaffle(ctx context.Context, input *SaveRaffleInput) error

	// GetRaffle retrieves a raffle by ID
	GetRaffle(ctx context.Context, input *GetRaffleInput) (*models.Raffle, error)
}
