package raffle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kgrady/raffled/internal/common/clock"
	"github.com/kgrady/raffled/internal/common/uuid"
	"github.com/kgrady/raffled/internal/models"
	"github.com/kgrady/raffled/internal/oracle"
	payoutRepo "github.com/kgrady/raffled/internal/repositories/payout"
	raffleRepo "github.com/kgrady/raffled/internal/repositories/raffle"
	"github.com/kgrady/raffled/internal/services/notify"
)

// service implements the Service interface.
//
// The mutex serializes every state-mutating operation, so each call's
// effects are applied as one indivisible unit. A round whose fulfillment
// never arrives stays in the drawing state; there is no draw timeout.
type service struct {
	raffleID    string
	entranceFee int64
	interval    time.Duration

	raffleRepo   raffleRepo.Repository
	payoutRepo   payoutRepo.Repository
	oracleClient oracle.Client
	notifier     notify.Notifier
	clock        clock.Clock
	uuid         uuid.UUID

	mu sync.Mutex
}

// New creates a new raffle service. If the raffle does not exist yet it is
// created open and empty, with the interval timer seeded to now.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RaffleID == "" {
		return nil, errors.New("raffle ID cannot be empty")
	}

	if cfg.EntranceFee <= 0 {
		return nil, errors.New("entrance fee must be positive")
	}

	if cfg.Interval <= 0 {
		return nil, errors.New("interval must be positive")
	}

	if cfg.RaffleRepo == nil {
		return nil, ErrNilRaffleRepo
	}

	if cfg.PayoutRepo == nil {
		return nil, ErrNilPayoutRepo
	}

	if cfg.Oracle == nil {
		return nil, ErrNilOracle
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	s := &service{
		raffleID:     cfg.RaffleID,
		entranceFee:  cfg.EntranceFee,
		interval:     cfg.Interval,
		raffleRepo:   cfg.RaffleRepo,
		payoutRepo:   cfg.PayoutRepo,
		oracleClient: cfg.Oracle,
		notifier:     cfg.Notifier,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
	}

	// Load the raffle, creating it on first run
	_, err := s.raffleRepo.GetRaffle(ctx, &raffleRepo.GetRaffleInput{
		RaffleID: s.raffleID,
	})
	if errors.Is(err, raffleRepo.ErrRaffleNotFound) {
		now := s.clock.Now()
		err = s.raffleRepo.SaveRaffle(ctx, &raffleRepo.SaveRaffleInput{
			Raffle: &models.Raffle{
				ID:           s.raffleID,
				State:        models.RaffleStateOpen,
				Players:      []string{},
				Pool:         0,
				LastDrawTime: now,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create raffle: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load raffle: %w", err)
	}

	return s, nil
}

// Enter admits a paid entry into the current round
func (s *service) Enter(ctx context.Context, input *EnterInput) (*EnterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.PlayerID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	out, err := s.admitEntry(ctx, input)
	if err != nil {
		return nil, err
	}

	// Dispatch outside the critical section; a slow sink must not hold
	// up the raffle
	if s.notifier != nil {
		s.notifier.EntryRecorded(ctx, &notify.EntryRecordedInput{
			PlayerID:    input.PlayerID,
			Amount:      input.Amount,
			PlayerCount: out.PlayerCount,
			Pool:        out.Pool,
		})
	}

	return out, nil
}

// admitEntry applies the entry under the service mutex
func (s *service) admitEntry(ctx context.Context, input *EnterInput) (*EnterOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raffle, err := s.getRaffle(ctx)
	if err != nil {
		return nil, err
	}

	// A round with an outstanding draw admits nobody, whatever they pay
	if !raffle.State.IsOpen() {
		return nil, ErrRaffleNotOpen
	}

	if input.Amount < s.entranceFee {
		return nil, ErrInsufficientPayment
	}

	// Each entry is a distinct ticket; repeat entries are allowed
	raffle.Players = append(raffle.Players, input.PlayerID)
	raffle.Pool += input.Amount
	raffle.UpdatedAt = s.clock.Now()

	err = s.raffleRepo.SaveRaffle(ctx, &raffleRepo.SaveRaffleInput{
		Raffle: raffle,
	})
	if err != nil {
		return nil, err
	}

	return &EnterOutput{
		PlayerCount: len(raffle.Players),
		Pool:        raffle.Pool,
	}, nil
}

// CheckUpkeep reports whether the round is ready for a draw. The round is
// ready when the interval has elapsed since the last resolution, the raffle
// is open, the pool is funded and at least one ticket is in.
func (s *service) CheckUpkeep(ctx context.Context, input *CheckUpkeepInput) (*CheckUpkeepOutput, error) {
	raffle, err := s.getRaffle(ctx)
	if err != nil {
		return nil, err
	}

	out := &CheckUpkeepOutput{
		UpkeepNeeded: s.upkeepNeeded(raffle, s.clock.Now()),
	}
	if input != nil {
		out.PerformData = input.CheckData
	}

	return out, nil
}

// PerformUpkeep closes the round and requests randomness from the oracle
func (s *service) PerformUpkeep(ctx context.Context, input *PerformUpkeepInput) (*PerformUpkeepOutput, error) {
	out, err := s.startDraw(ctx)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.DrawRequested(ctx, &notify.DrawRequestedInput{
			RequestID: out.RequestID,
		})
	}

	return out, nil
}

// startDraw applies the draw request under the service mutex. The round
// flips to drawing before the oracle is called, so no entry can land while
// a draw is in flight.
func (s *service) startDraw(ctx context.Context) (*PerformUpkeepOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raffle, err := s.getRaffle(ctx)
	if err != nil {
		return nil, err
	}

	// Re-evaluate readiness; the keeper's earlier check may be stale
	if !s.upkeepNeeded(raffle, s.clock.Now()) {
		return nil, &UpkeepNotReadyError{
			Pool:        raffle.Pool,
			PlayerCount: len(raffle.Players),
			State:       raffle.State,
		}
	}

	raffle.State = models.RaffleStateDrawing
	raffle.UpdatedAt = s.clock.Now()

	err = s.raffleRepo.SaveRaffle(ctx, &raffleRepo.SaveRaffleInput{
		Raffle: raffle,
	})
	if err != nil {
		return nil, err
	}

	requested, err := s.oracleClient.RequestRandomWords(ctx, &oracle.RequestRandomWordsInput{
		NumWords: 1,
	})
	if err != nil {
		return nil, s.reopenAfterDrawFailure(ctx, raffle,
			fmt.Errorf("failed to request randomness: %w", err))
	}

	raffle.OutstandingRequestID = requested.RequestID
	raffle.UpdatedAt = s.clock.Now()

	err = s.raffleRepo.SaveRaffle(ctx, &raffleRepo.SaveRaffleInput{
		Raffle: raffle,
	})
	if err != nil {
		// The oracle accepted the request but it went unrecorded. A
		// drawing round with no recorded request could never resolve,
		// so reopen instead; the eventual fulfillment is rejected as
		// stale.
		return nil, s.reopenAfterDrawFailure(ctx, raffle,
			fmt.Errorf("failed to record randomness request: %w", err))
	}

	return &PerformUpkeepOutput{
		RequestID: requested.RequestID,
	}, nil
}

// reopenAfterDrawFailure reverts the round to open so a failed draw attempt
// leaves no partial state, and returns the failure that caused it
func (s *service) reopenAfterDrawFailure(ctx context.Context, raffle *models.Raffle, cause error) error {
	raffle.State = models.RaffleStateOpen
	raffle.OutstandingRequestID = ""
	raffle.UpdatedAt = s.clock.Now()

	if saveErr := s.raffleRepo.SaveRaffle(ctx, &raffleRepo.SaveRaffleInput{
		Raffle: raffle,
	}); saveErr != nil {
		return fmt.Errorf("failed to reopen raffle after draw error %v: %w", cause, saveErr)
	}

	return cause
}

// FulfillRandomness resolves the round with the oracle's random word. All
// bookkeeping is committed before the pool transfer; if the transfer fails
// the pre-resolution state is restored and the round stays in drawing with
// the same outstanding request, ready for a retry.
func (s *service) FulfillRandomness(ctx context.Context, input *FulfillRandomnessInput) (*FulfillRandomnessOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.resolveRound(ctx, input)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.WinnerPicked(ctx, &notify.WinnerPickedInput{
			Winner: out.Winner,
			Amount: out.Amount,
		})
	}

	return out, nil
}

// resolveRound applies the fulfillment under the service mutex
func (s *service) resolveRound(ctx context.Context, input *FulfillRandomnessInput) (*FulfillRandomnessOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raffle, err := s.getRaffle(ctx)
	if err != nil {
		return nil, err
	}

	// Reject duplicate, stale and never-issued request IDs alike
	if !raffle.State.IsDrawing() || raffle.OutstandingRequestID != input.RequestID {
		return nil, ErrUnknownRequest
	}

	// A draw only starts with at least one ticket in, so the list is
	// never empty here. The modulo bias over a uint64 word is negligible
	// for any realistic ticket count.
	winnerIndex := int(input.RandomWord % uint64(len(raffle.Players)))
	winner := raffle.Players[winnerIndex]
	amount := raffle.Pool

	snapshot := raffle.Clone()
	now := s.clock.Now()

	raffle.RecentWinner = winner
	raffle.Players = []string{}
	raffle.Pool = 0
	raffle.LastDrawTime = now
	raffle.State = models.RaffleStateOpen
	raffle.OutstandingRequestID = ""
	raffle.UpdatedAt = now

	err = s.raffleRepo.SaveRaffle(ctx, &raffleRepo.SaveRaffleInput{
		Raffle: raffle,
	})
	if err != nil {
		return nil, err
	}

	// Transfer last, with everything already settled
	err = s.payoutRepo.RecordPayout(ctx, &payoutRepo.RecordPayoutInput{
		Payout: &models.Payout{
			ID:        s.uuid.NewUUID(),
			RaffleID:  s.raffleID,
			RequestID: input.RequestID,
			PlayerID:  winner,
			Amount:    amount,
			PaidAt:    now,
		},
	})
	if err != nil {
		if saveErr := s.raffleRepo.SaveRaffle(ctx, &raffleRepo.SaveRaffleInput{
			Raffle: snapshot,
		}); saveErr != nil {
			return nil, fmt.Errorf("failed to roll back after payout error %v: %w", err, saveErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrPayoutFailed, err)
	}

	return &FulfillRandomnessOutput{
		Winner: winner,
		Amount: amount,
	}, nil
}

// GetStatus returns a read-only snapshot of the raffle
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	raffle, err := s.getRaffle(ctx)
	if err != nil {
		return nil, err
	}

	return &GetStatusOutput{
		State:        raffle.State,
		EntranceFee:  s.entranceFee,
		Interval:     s.interval,
		PlayerCount:  len(raffle.Players),
		Pool:         raffle.Pool,
		RecentWinner: raffle.RecentWinner,
		LastDrawTime: raffle.LastDrawTime,
	}, nil
}

// GetPlayer returns the player at an index in the current round's entry list
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	raffle, err := s.getRaffle(ctx)
	if err != nil {
		return nil, err
	}

	if input.Index < 0 || input.Index >= len(raffle.Players) {
		return nil, ErrPlayerIndexOutOfRange
	}

	return &GetPlayerOutput{
		PlayerID: raffle.Players[input.Index],
	}, nil
}

// getRaffle loads the service's raffle from the repository
func (s *service) getRaffle(ctx context.Context) (*models.Raffle, error) {
	raffle, err := s.raffleRepo.GetRaffle(ctx, &raffleRepo.GetRaffleInput{
		RaffleID: s.raffleID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load raffle: %w", err)
	}

	return raffle, nil
}

// upkeepNeeded is the readiness predicate; all four conditions must hold
func (s *service) upkeepNeeded(raffle *models.Raffle, now time.Time) bool {
	timePassed := now.Sub(raffle.LastDrawTime) > s.interval
	isOpen := raffle.State.IsOpen()
	hasBalance := raffle.Pool > 0
	hasPlayers := len(raffle.Players) > 0

	return timePassed && isOpen && hasBalance && hasPlayers
}
