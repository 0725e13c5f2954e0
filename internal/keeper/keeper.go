package keeper

import (
	"context"
	"errors"
	"time"

	"github.com/google/logger"
	"github.com/kgrady/raffled/internal/services/raffle"
)

// Keeper polls the raffle on a fixed schedule and starts a draw whenever
// CheckUpkeep reports the round is ready. The raffle itself makes no timing
// guarantees; this loop is what drives it.
type Keeper struct {
	service raffle.Service
	poll    time.Duration
	stop    chan struct{}
	done    chan struct{}
}

// Config holds the configuration for the keeper
type Config struct {
	// RaffleService is the raffle being kept
	RaffleService raffle.Service

	// PollInterval is how often readiness is checked
	PollInterval time.Duration
}

// New creates a new keeper
func New(cfg *Config) (*Keeper, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RaffleService == nil {
		return nil, errors.New("raffle service cannot be nil")
	}

	if cfg.PollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}

	return &Keeper{
		service: cfg.RaffleService,
		poll:    cfg.PollInterval,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// Start runs the polling loop in a background goroutine
func (k *Keeper) Start() {
	go func() {
		defer close(k.done)

		ticker := time.NewTicker(k.poll)
		defer ticker.Stop()

		logger.Infof("Keeper started, polling every %s", k.poll)

		for {
			select {
			case <-ticker.C:
				k.tick(context.Background())
			case <-k.stop:
				return
			}
		}
	}()
}

// Stop shuts the polling loop down and waits for it to exit
func (k *Keeper) Stop() {
	close(k.stop)
	<-k.done
	logger.Info("Keeper stopped")
}

// tick performs one check-then-perform cycle
func (k *Keeper) tick(ctx context.Context) {
	check, err := k.service.CheckUpkeep(ctx, &raffle.CheckUpkeepInput{})
	if err != nil {
		logger.Errorf("Upkeep check failed: %v", err)
		return
	}

	if !check.UpkeepNeeded {
		return
	}

	performed, err := k.service.PerformUpkeep(ctx, &raffle.PerformUpkeepInput{
		PerformData: check.PerformData,
	})
	if err != nil {
		// Another keeper may have won the race; not-ready is routine here
		if errors.Is(err, raffle.ErrUpkeepNotReady) {
			logger.Infof("Upkeep no longer needed: %v", err)
			return
		}
		logger.Errorf("Failed to perform upkeep: %v", err)
		return
	}

	logger.Infof("Draw requested, request_id=%s", performed.RequestID)
}
