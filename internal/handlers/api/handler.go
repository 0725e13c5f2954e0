package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	payoutRepo "github.com/kgrady/raffled/internal/repositories/payout"
	"github.com/kgrady/raffled/internal/services/raffle"
)

// Handler holds the dependencies for the HTTP handlers
type Handler struct {
	service raffle.Service
	payouts payoutRepo.Repository
}

// Config holds the configuration for the HTTP handler
type Config struct {
	// RaffleService drives all raffle operations
	RaffleService raffle.Service

	// PayoutRepo serves the winnings queries
	PayoutRepo payoutRepo.Repository
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RaffleService == nil {
		return nil, errors.New("raffle service cannot be nil")
	}

	if cfg.PayoutRepo == nil {
		return nil, errors.New("payout repository cannot be nil")
	}

	return &Handler{
		service: cfg.RaffleService,
		payouts: cfg.PayoutRepo,
	}, nil
}

// RegisterRoutes registers all the application routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/raffle/entries", h.Enter)
	router.GET("/raffle", h.GetRaffle)
	router.GET("/raffle/players/:index", h.GetPlayer)
	router.GET("/raffle/upkeep", h.CheckUpkeep)
	router.POST("/raffle/upkeep", h.PerformUpkeep)
	router.POST("/callbacks/randomness", h.RandomnessCallback)
	router.GET("/players/:id/balance", h.GetPlayerBalance)
	router.GET("/players/:id/payouts", h.GetPlayerPayouts)
}

type enterRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Amount   int64  `json:"amount"`
}

// Enter admits a paid entry into the current round
func (h *Handler) Enter(c *gin.Context) {
	var req enterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.Enter(c.Request.Context(), &raffle.EnterInput{
		PlayerID: req.PlayerID,
		Amount:   req.Amount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"player_count": out.PlayerCount,
		"pool":         out.Pool,
	})
}

// GetRaffle returns the raffle status snapshot
func (h *Handler) GetRaffle(c *gin.Context) {
	out, err := h.service.GetStatus(c.Request.Context(), &raffle.GetStatusInput{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":          out.State,
		"entrance_fee":   out.EntranceFee,
		"interval_secs":  int64(out.Interval / time.Second),
		"player_count":   out.PlayerCount,
		"pool":           out.Pool,
		"recent_winner":  out.RecentWinner,
		"last_draw_time": out.LastDrawTime,
	})
}

// GetPlayer returns the player at an index in the entry list
func (h *Handler) GetPlayer(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	out, err := h.service.GetPlayer(c.Request.Context(), &raffle.GetPlayerInput{
		Index: index,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"player_id": out.PlayerID})
}

// CheckUpkeep reports draw readiness, for keepers polling over HTTP
func (h *Handler) CheckUpkeep(c *gin.Context) {
	out, err := h.service.CheckUpkeep(c.Request.Context(), &raffle.CheckUpkeepInput{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"upkeep_needed": out.UpkeepNeeded})
}

// PerformUpkeep starts a draw
func (h *Handler) PerformUpkeep(c *gin.Context) {
	out, err := h.service.PerformUpkeep(c.Request.Context(), &raffle.PerformUpkeepInput{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request_id": out.RequestID})
}

type randomnessCallback struct {
	RequestID  string `json:"request_id" binding:"required"`
	RandomWord uint64 `json:"random_word"`
}

// RandomnessCallback receives the oracle's fulfillment and resolves the round
func (h *Handler) RandomnessCallback(c *gin.Context) {
	var req randomnessCallback
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.FulfillRandomness(c.Request.Context(), &raffle.FulfillRandomnessInput{
		RequestID:  req.RequestID,
		RandomWord: req.RandomWord,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"winner": out.Winner,
		"amount": out.Amount,
	})
}

// GetPlayerBalance returns a player's accumulated winnings
func (h *Handler) GetPlayerBalance(c *gin.Context) {
	out, err := h.payouts.GetPlayerBalance(c.Request.Context(), &payoutRepo.GetPlayerBalanceInput{
		PlayerID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": out.Balance})
}

// GetPlayerPayouts returns a player's payout history
func (h *Handler) GetPlayerPayouts(c *gin.Context) {
	out, err := h.payouts.GetPayoutsForPlayer(c.Request.Context(), &payoutRepo.GetPayoutsForPlayerInput{
		PlayerID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	payouts := make([]gin.H, 0, len(out.Payouts))
	for _, p := range out.Payouts {
		payouts = append(payouts, gin.H{
			"id":         p.ID,
			"raffle_id":  p.RaffleID,
			"request_id": p.RequestID,
			"amount":     p.Amount,
			"paid_at":    p.PaidAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

// respondError maps service errors to HTTP statuses
func (h *Handler) respondError(c *gin.Context, err error) {
	var notReady *raffle.UpkeepNotReadyError

	switch {
	case errors.Is(err, raffle.ErrInsufficientPayment):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, raffle.ErrRaffleNotOpen):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &notReady):
		c.JSON(http.StatusConflict, gin.H{
			"error":        notReady.Error(),
			"pool":         notReady.Pool,
			"player_count": notReady.PlayerCount,
			"state":        notReady.State,
		})
	case errors.Is(err, raffle.ErrUnknownRequest):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, raffle.ErrPlayerIndexOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, raffle.ErrPayoutFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.Errorf("Unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
