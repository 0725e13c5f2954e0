package raffle

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
	raffleKeyPrefix   = "raffle:"
	drawingRafflesKey = "drawing_raffles"
)

// ErrRaffleNotFound is returned when a raffle is not found
var ErrRaffleNotFound = errors.New("raffle not found")

// Config holds configuration for the Redis raffle repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed raffle repository
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

// SaveRaffle persists a raffle to Redis
func (r *redisRepository) SaveRaffle(ctx context.Context, input *SaveRaffleInput) error {
	if input == nil || input.Raffle == nil {
		return errors.New("input and raffle cannot be nil")
	}

	// Marshal the raffle to JSON
	raffleJSON, err := json.Marshal(input.Raffle)
	if err != nil {
		return fmt.Errorf("failed to marshal raffle: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the raffle
	raffleKey := fmt.Sprintf("%s%s", raffleKeyPrefix, input.Raffle.ID)
	pipe.Set(ctx, raffleKey, raffleJSON, 0)

	// Track raffles with an outstanding draw for operational visibility
	if input.Raffle.State == models.RaffleStateDrawing {
		pipe.SAdd(ctx, drawingRafflesKey, input.Raffle.ID)
	} else {
		pipe.SRem(ctx, drawingRafflesKey, input.Raffle.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save raffle: %w", err)
	}

	return nil
}

// GetRaffle retrieves a raffle by ID from Redis
func (r *redisRepository) GetRaffle(ctx context.Context, input *GetRaffleInput) (*models.Raffle, error) {
	if input == nil || input.RaffleID == "" {
		return nil, errors.New("input and raffle ID cannot be empty")
	}

	// Get the raffle from Redis
	raffleKey := fmt.Sprintf("%s%s", raffleKeyPrefix, input.RaffleID)
	raffleJSON, err := r.client.Get(ctx, raffleKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRaffleNotFound
		}
		return nil, fmt.Errorf("failed to get raffle: %w", err)
	}

	// Unmarshal the raffle from JSON
	var raffle models.Raffle
	if err := json.Unmarshal([]byte(raffleJSON), &raffle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raffle: %w", err)
	}

	return &raffle, nil
}
