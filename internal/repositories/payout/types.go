package payout

import "github.com/kgrady/raffled/internal/models"

type RecordPayoutInput struct {
	Payout *models.Payout
}

type GetPlayerBalanceInput struct {
	PlayerID string
}

type GetPlayerBalanceOutput struct {
	Balance int64
}

type GetPayoutsForPlayerInput struct {
	PlayerID string
}

type GetPayoutsForPlayerOutput struct {
	Payouts []*models.Payout
}
