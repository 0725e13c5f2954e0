package payout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kgrady/raffled/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	payoutKeyPrefix        = "payout:"
	playerPayoutsKeyPrefix = "player_payouts:"
	playerBalanceKeyPrefix = "player_balance:"
)

// ErrPayoutNotFound is returned when a payout record is not found
var ErrPayoutNotFound = errors.New("payout record not found")

// Config holds configuration for the Redis payout repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed payout repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RecordPayout appends a payout record and credits the winner's balance
func (r *redisRepository) RecordPayout(ctx context.Context, input *RecordPayoutInput) error {
	if input == nil || input.Payout == nil {
		return errors.New("input and payout cannot be nil")
	}

	record := input.Payout

	if record.ID == "" {
		return errors.New("payout ID cannot be empty")
	}

	if record.PlayerID == "" {
		return errors.New("payout player ID cannot be empty")
	}

	if record.Amount <= 0 {
		return errors.New("payout amount must be positive")
	}

	// Marshal the record to JSON
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal payout record: %w", err)
	}

	// Create a Redis transaction so the record and the balance credit
	// land together
	pipe := r.client.Pipeline()

	// Store the payout record
	payoutKey := fmt.Sprintf("%s%s", payoutKeyPrefix, record.ID)
	pipe.Set(ctx, payoutKey, recordJSON, 0)

	// Add to the player's payout history sorted set
	playerKey := fmt.Sprintf("%s%s", playerPayoutsKeyPrefix, record.PlayerID)
	pipe.ZAdd(ctx, playerKey, redis.Z{
		Score:  float64(record.PaidAt.Unix()),
		Member: record.ID,
	})

	// Credit the player's balance
	balanceKey := fmt.Sprintf("%s%s", playerBalanceKeyPrefix, record.PlayerID)
	pipe.IncrBy(ctx, balanceKey, record.Amount)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record payout: %w", err)
	}

	return nil
}

// GetPlayerBalance retrieves the total credited balance for a player
func (r *redisRepository) GetPlayerBalance(ctx context.Context, input *GetPlayerBalanceInput) (*GetPlayerBalanceOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	balanceKey := fmt.Sprintf("%s%s", playerBalanceKeyPrefix, input.PlayerID)
	balance, err := r.client.Get(ctx, balanceKey).Int64()
	if err != nil {
		if err == redis.Nil {
			// No payouts yet
			return &GetPlayerBalanceOutput{Balance: 0}, nil
		}
		return nil, fmt.Errorf("failed to get player balance: %w", err)
	}

	return &GetPlayerBalanceOutput{Balance: balance}, nil
}

// GetPayoutsForPlayer retrieves all payout records for a player, oldest first
func (r *redisRepository) GetPayoutsForPlayer(ctx context.Context, input *GetPayoutsForPlayerInput) (*GetPayoutsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerPayoutsKeyPrefix, input.PlayerID)
	payoutIDs, err := r.client.ZRange(ctx, playerKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get payout IDs for player: %w", err)
	}

	payouts := make([]*models.Payout, 0, len(payoutIDs))
	for _, payoutID := range payoutIDs {
		payoutKey := fmt.Sprintf("%s%s", payoutKeyPrefix, payoutID)
		payoutJSON, err := r.client.Get(ctx, payoutKey).Result()
		if err != nil {
			if err == redis.Nil {
				return nil, ErrPayoutNotFound
			}
			return nil, fmt.Errorf("failed to get payout record: %w", err)
		}

		var record models.Payout
		if err := json.Unmarshal([]byte(payoutJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payout record: %w", err)
		}

		payouts = append(payouts, &record)
	}

	return &GetPayoutsForPlayerOutput{Payouts: payouts}, nil
}
