package raffle

import "github.com/kgrady/raffled/internal/models"

type SaveRaffleInput struct {
	Raffle *models.Raffle
}

type GetRaffleInput struct {
	RaffleID string
}
