package raffle

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/kgrady/raffled/internal/common/clock/mocks"
	uuidMocks "github.com/kgrady/raffled/internal/common/uuid/mocks"
	"github.com/kgrady/raffled/internal/models"
	"github.com/kgrady/raffled/internal/oracle"
	oracleMocks "github.com/kgrady/raffled/internal/oracle/mocks"
	payoutRepo "github.com/kgrady/raffled/internal/repositories/payout"
	payoutMocks "github.com/kgrady/raffled/internal/repositories/payout/mocks"
	raffleRepo "github.com/kgrady/raffled/internal/repositories/raffle"
	raffleMocks "github.com/kgrady/raffled/internal/repositories/raffle/mocks"
	"github.com/kgrady/raffled/internal/services/notify"
	notifyMocks "github.com/kgrady/raffled/internal/services/notify/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RaffleServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRaffleRepo *raffleMocks.MockRepository
	mockPayoutRepo *payoutMocks.MockRepository
	mockOracle     *oracleMocks.MockClient
	mockNotifier   *notifyMocks.MockNotifier
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	ctx            context.Context

	// Test data
	testTime      time.Time
	testRaffleID  string
	testFee       int64
	testInterval  time.Duration
	testRequestID string

	// Reusable test fixtures
	freshRaffle   *models.Raffle
	readyRaffle   *models.Raffle
	drawingRaffle *models.Raffle
}

func (s *RaffleServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRaffleRepo = raffleMocks.NewMockRepository(s.mockCtrl)
	s.mockPayoutRepo = payoutMocks.NewMockRepository(s.mockCtrl)
	s.mockOracle = oracleMocks.NewMockClient(s.mockCtrl)
	s.mockNotifier = notifyMocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testRaffleID = "test-raffle-id"
	s.testFee = 100
	s.testInterval = time.Hour
	s.testRequestID = "test-request-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Freshly created raffle: open, empty, interval not yet elapsed
	s.freshRaffle = &models.Raffle{
		ID:           s.testRaffleID,
		State:        models.RaffleStateOpen,
		Players:      []string{},
		Pool:         0,
		LastDrawTime: s.testTime,
		CreatedAt:    s.testTime,
		UpdatedAt:    s.testTime,
	}

	// Raffle ready for a draw: open, funded, interval elapsed
	s.readyRaffle = &models.Raffle{
		ID:           s.testRaffleID,
		State:        models.RaffleStateOpen,
		Players:      []string{"player-0", "player-1", "player-2", "player-3"},
		Pool:         400,
		LastDrawTime: s.testTime.Add(-2 * time.Hour),
		CreatedAt:    s.testTime.Add(-24 * time.Hour),
		UpdatedAt:    s.testTime.Add(-time.Minute),
	}

	// Raffle with an outstanding draw
	s.drawingRaffle = &models.Raffle{
		ID:                   s.testRaffleID,
		State:                models.RaffleStateDrawing,
		Players:              []string{"player-0", "player-1", "player-2", "player-3"},
		Pool:                 400,
		OutstandingRequestID: s.testRequestID,
		LastDrawTime:         s.testTime.Add(-2 * time.Hour),
		CreatedAt:            s.testTime.Add(-24 * time.Hour),
		UpdatedAt:            s.testTime.Add(-time.Minute),
	}
}

func (s *RaffleServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRaffleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RaffleServiceTestSuite))
}

// newService builds a service whose constructor finds an existing raffle
func (s *RaffleServiceTestSuite) newService() Service {
	s.mockRaffleRepo.EXPECT().
		GetRaffle(s.ctx, &raffleRepo.GetRaffleInput{RaffleID: s.testRaffleID}).
		Return(s.freshRaffle.Clone(), nil)

	svc, err := New(s.ctx, &Config{
		RaffleID:    s.testRaffleID,
		EntranceFee: s.testFee,
		Interval:    s.testInterval,
		RaffleRepo:  s.mockRaffleRepo,
		PayoutRepo:  s.mockPayoutRepo,
		Oracle:      s.mockOracle,
		Notifier:    s.mockNotifier,
		Clock:       s.mockClock,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)

	return svc
}

func (s *RaffleServiceTestSuite) expectGetRaffle(raffle *models.Raffle) {
	s.mockRaffleRepo.EXPECT().
		GetRaffle(s.ctx, &raffleRepo.GetRaffleInput{RaffleID: s.testRaffleID}).
		Return(raffle.Clone(), nil)
}

func (s *RaffleServiceTestSuite) TestNewCreatesRaffleOnFirstRun() {
	s.mockRaffleRepo.EXPECT().
		GetRaffle(s.ctx, &raffleRepo.GetRaffleInput{RaffleID: s.testRaffleID}).
		Return(nil, raffleRepo.ErrRaffleNotFound)

	s.mockRaffleRepo.EXPECT().
		SaveRaffle(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
			s.Equal(s.testRaffleID, input.Raffle.ID)
			s.Equal(models.RaffleStateOpen, input.Raffle.State)
			s.Empty(input.Raffle.Players)
			s.Equal(int64(0), input.Raffle.Pool)
			s.True(input.Raffle.LastDrawTime.Equal(s.testTime))
			return nil
		})

	svc, err := New(s.ctx, &Config{
		RaffleID:    s.testRaffleID,
		EntranceFee: s.testFee,
		Interval:    s.testInterval,
		RaffleRepo:  s.mockRaffleRepo,
		PayoutRepo:  s.mockPayoutRepo,
		Oracle:      s.mockOracle,
		Notifier:    s.mockNotifier,
		Clock:       s.mockClock,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)
	s.NotNil(svc)
}

func (s *RaffleServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(s.ctx, nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(s.ctx, &Config{
		RaffleID:    s.testRaffleID,
		EntranceFee: 0,
		Interval:    s.testInterval,
		RaffleRepo:  s.mockRaffleRepo,
		PayoutRepo:  s.mockPayoutRepo,
		Oracle:      s.mockOracle,
		Clock:       s.mockClock,
		UUID:        s.mockUUID,
	})
	s.Require().Error(err)

	_, err = New(s.ctx, &Config{
		RaffleID:    s.testRaffleID,
		EntranceFee: s.testFee,
		Interval:    s.testInterval,
		PayoutRepo:  s.mockPayoutRepo,
		Oracle:      s.mockOracle,
		Clock:       s.mockClock,
		UUID:        s.mockUUID,
	})
	s.Require().ErrorIs(err, ErrNilRaffleRepo)
}

func (s *RaffleServiceTestSuite) TestEnter() {
	svc := s.newService()

	s.expectGetRaffle(s.freshRaffle)

	s.mockRaffleRepo.EXPECT().
		SaveRaffle(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
			s.Equal([]string{"test-player-id"}, input.Raffle.Players)
			s.Equal(int64(150), input.Raffle.Pool)
			s.Equal(models.RaffleStateOpen, input.Raffle.State)
			return nil
		})

	s.mockNotifier.EXPECT().
		EntryRecorded(s.ctx, &notify.EntryRecordedInput{
			PlayerID:    "test-player-id",
			Amount:      150,
			PlayerCount: 1,
			Pool:        150,
		})

	// Overpaying is allowed; the whole payment joins the pool
	out, err := svc.Enter(s.ctx, &EnterInput{
		PlayerID: "test-player-id",
		Amount:   150,
	})
	s.Require().NoError(err)
	s.Equal(1, out.PlayerCount)
	s.Equal(int64(150), out.Pool)
}

func (s *RaffleServiceTestSuite) TestEnterAllowsRepeatEntries() {
	svc := s.newService()

	raffle := s.freshRaffle.Clone()
	raffle.Players = []string{"test-player-id"}
	raffle.Pool = 100
	s.expectGetRaffle(raffle)

	s.mockRaffleRepo.EXPECT().
		SaveRaffle(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
			s.Equal([]string{"test-player-id", "test-player-id"}, input.Raffle.Players)
			s.Equal(int64(200), input.Raffle.Pool)
			return nil
		})

	s.mockNotifier.EXPECT().EntryRecorded(s.ctx, gomock.Any())

	out, err := svc.Enter(s.ctx, &EnterInput{
		PlayerID: "test-player-id",
		Amount:   100,
	})
	s.Require().NoError(err)
	s.Equal(2, out.PlayerCount)
}

func (s *RaffleServiceTestSuite) TestEnterInsufficientPayment() {
	svc := s.newService()

	s.expectGetRaffle(s.freshRaffle)

	// No save, no notification
	_, err := svc.Enter(s.ctx, &EnterInput{
		PlayerID: "test-player-id",
		Amount:   99,
	})
	s.Require().ErrorIs(err, ErrInsufficientPayment)
}

func (s *RaffleServiceTestSuite) TestEnterWhileDrawing() {
	svc := s.newService()

	s.expectGetRaffle(s.drawingRaffle)

	// The round is closed regardless of the payment amount
	_, err := svc.Enter(s.ctx, &EnterInput{
		PlayerID: "test-player-id",
		Amount:   1,
	})
	s.Require().ErrorIs(err, ErrRaffleNotOpen)
}

func (s *RaffleServiceTestSuite) TestCheckUpkeep() {
	noPlayers := s.readyRaffle.Clone()
	noPlayers.Players = []string{}

	noBalance := s.readyRaffle.Clone()
	noBalance.Pool = 0

	tooSoon := s.readyRaffle.Clone()
	tooSoon.LastDrawTime = s.testTime.Add(-s.testInterval)

	testCases := []struct {
		name   string
		raffle *models.Raffle
		needed bool
	}{
		{name: "ready", raffle: s.readyRaffle, needed: true},
		{name: "drawing", raffle: s.drawingRaffle, needed: false},
		{name: "no players", raffle: noPlayers, needed: false},
		{name: "no balance", raffle: noBalance, needed: false},
		{name: "interval not elapsed", raffle: tooSoon, needed: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc := s.newService()
			s.expectGetRaffle(tc.raffle)

			out, err := svc.CheckUpkeep(s.ctx, &CheckUpkeepInput{
				CheckData: []byte("opaque"),
			})
			s.Require().NoError(err)
			s.Equal(tc.needed, out.UpkeepNeeded)
			s.Equal([]byte("opaque"), out.PerformData)
		})
	}
}

func (s *RaffleServiceTestSuite) TestPerformUpkeep() {
	svc := s.newService()

	s.expectGetRaffle(s.readyRaffle)

	gomock.InOrder(
		// First save flips the state before the oracle sees the request
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateDrawing, input.Raffle.State)
				s.Empty(input.Raffle.OutstandingRequestID)
				return nil
			}),
		s.mockOracle.EXPECT().
			RequestRandomWords(s.ctx, &oracle.RequestRandomWordsInput{NumWords: 1}).
			Return(&oracle.RequestRandomWordsOutput{RequestID: s.testRequestID}, nil),
		// Second save records the request ID
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateDrawing, input.Raffle.State)
				s.Equal(s.testRequestID, input.Raffle.OutstandingRequestID)
				return nil
			}),
	)

	s.mockNotifier.EXPECT().
		DrawRequested(s.ctx, &notify.DrawRequestedInput{RequestID: s.testRequestID})

	out, err := svc.PerformUpkeep(s.ctx, &PerformUpkeepInput{})
	s.Require().NoError(err)
	s.Equal(s.testRequestID, out.RequestID)
}

func (s *RaffleServiceTestSuite) TestPerformUpkeepNotReady() {
	svc := s.newService()

	s.expectGetRaffle(s.freshRaffle)

	_, err := svc.PerformUpkeep(s.ctx, &PerformUpkeepInput{})
	s.Require().ErrorIs(err, ErrUpkeepNotReady)

	// The error carries a diagnostic snapshot
	var notReady *UpkeepNotReadyError
	s.Require().ErrorAs(err, &notReady)
	s.Equal(int64(0), notReady.Pool)
	s.Equal(0, notReady.PlayerCount)
	s.Equal(models.RaffleStateOpen, notReady.State)
}

func (s *RaffleServiceTestSuite) TestPerformUpkeepWhileDrawing() {
	svc := s.newService()

	s.expectGetRaffle(s.drawingRaffle)

	_, err := svc.PerformUpkeep(s.ctx, &PerformUpkeepInput{})
	s.Require().ErrorIs(err, ErrUpkeepNotReady)

	var notReady *UpkeepNotReadyError
	s.Require().ErrorAs(err, &notReady)
	s.Equal(models.RaffleStateDrawing, notReady.State)
}

func (s *RaffleServiceTestSuite) TestPerformUpkeepOracleError() {
	svc := s.newService()

	s.expectGetRaffle(s.readyRaffle)

	oracleErr := errors.New("coordinator unavailable")

	gomock.InOrder(
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateDrawing, input.Raffle.State)
				return nil
			}),
		s.mockOracle.EXPECT().
			RequestRandomWords(s.ctx, gomock.Any()).
			Return(nil, oracleErr),
		// The round is reopened so the failure leaves no partial state
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateOpen, input.Raffle.State)
				s.Empty(input.Raffle.OutstandingRequestID)
				return nil
			}),
	)

	_, err := svc.PerformUpkeep(s.ctx, &PerformUpkeepInput{})
	s.Require().ErrorIs(err, oracleErr)
}

func (s *RaffleServiceTestSuite) TestPerformUpkeepRecordRequestError() {
	svc := s.newService()

	s.expectGetRaffle(s.readyRaffle)

	saveErr := errors.New("connection reset")

	gomock.InOrder(
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateDrawing, input.Raffle.State)
				return nil
			}),
		s.mockOracle.EXPECT().
			RequestRandomWords(s.ctx, gomock.Any()).
			Return(&oracle.RequestRandomWordsOutput{RequestID: s.testRequestID}, nil),
		// Saving the issued request ID fails after the oracle accepted it
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(s.testRequestID, input.Raffle.OutstandingRequestID)
				return saveErr
			}),
		// The round must reopen rather than stay drawing with no
		// recorded request, which would never resolve
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateOpen, input.Raffle.State)
				s.Empty(input.Raffle.OutstandingRequestID)
				return nil
			}),
	)

	_, err := svc.PerformUpkeep(s.ctx, &PerformUpkeepInput{})
	s.Require().ErrorIs(err, saveErr)
}

func (s *RaffleServiceTestSuite) TestFulfillRandomness() {
	svc := s.newService()

	s.expectGetRaffle(s.drawingRaffle)

	s.mockUUID.EXPECT().NewUUID().Return("test-payout-id")

	gomock.InOrder(
		// Bookkeeping is committed before the transfer
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateOpen, input.Raffle.State)
				s.Empty(input.Raffle.Players)
				s.Equal(int64(0), input.Raffle.Pool)
				s.Empty(input.Raffle.OutstandingRequestID)
				s.Equal("player-3", input.Raffle.RecentWinner)
				s.True(input.Raffle.LastDrawTime.Equal(s.testTime))
				return nil
			}),
		s.mockPayoutRepo.EXPECT().
			RecordPayout(s.ctx, &payoutRepo.RecordPayoutInput{
				Payout: &models.Payout{
					ID:        "test-payout-id",
					RaffleID:  s.testRaffleID,
					RequestID: s.testRequestID,
					PlayerID:  "player-3",
					Amount:    400,
					PaidAt:    s.testTime,
				},
			}).
			Return(nil),
	)

	s.mockNotifier.EXPECT().
		WinnerPicked(s.ctx, &notify.WinnerPickedInput{
			Winner: "player-3",
			Amount: 400,
		})

	// 7 mod 4 = 3, so the fourth entry wins
	out, err := svc.FulfillRandomness(s.ctx, &FulfillRandomnessInput{
		RequestID:  s.testRequestID,
		RandomWord: 7,
	})
	s.Require().NoError(err)
	s.Equal("player-3", out.Winner)
	s.Equal(int64(400), out.Amount)
}

func (s *RaffleServiceTestSuite) TestFulfillRandomnessSinglePlayer() {
	svc := s.newService()

	raffle := s.drawingRaffle.Clone()
	raffle.Players = []string{"sole-player"}
	raffle.Pool = 100
	s.expectGetRaffle(raffle)

	s.mockUUID.EXPECT().NewUUID().Return("test-payout-id")
	s.mockRaffleRepo.EXPECT().SaveRaffle(s.ctx, gomock.Any()).Return(nil)
	s.mockPayoutRepo.EXPECT().RecordPayout(s.ctx, gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().WinnerPicked(s.ctx, gomock.Any())

	// 42 mod 1 = 0
	out, err := svc.FulfillRandomness(s.ctx, &FulfillRandomnessInput{
		RequestID:  s.testRequestID,
		RandomWord: 42,
	})
	s.Require().NoError(err)
	s.Equal("sole-player", out.Winner)
	s.Equal(int64(100), out.Amount)
}

func (s *RaffleServiceTestSuite) TestFulfillRandomnessUnknownRequest() {
	svc := s.newService()

	s.expectGetRaffle(s.drawingRaffle)

	// Wrong request ID: no saves, no payout
	_, err := svc.FulfillRandomness(s.ctx, &FulfillRandomnessInput{
		RequestID:  "some-other-request-id",
		RandomWord: 7,
	})
	s.Require().ErrorIs(err, ErrUnknownRequest)
}

func (s *RaffleServiceTestSuite) TestFulfillRandomnessStaleRequest() {
	svc := s.newService()

	// Round already resolved and reopened; a late duplicate must be rejected
	resolved := s.freshRaffle.Clone()
	resolved.RecentWinner = "player-3"
	s.expectGetRaffle(resolved)

	_, err := svc.FulfillRandomness(s.ctx, &FulfillRandomnessInput{
		RequestID:  s.testRequestID,
		RandomWord: 7,
	})
	s.Require().ErrorIs(err, ErrUnknownRequest)
}

func (s *RaffleServiceTestSuite) TestFulfillRandomnessPayoutFailed() {
	svc := s.newService()

	s.expectGetRaffle(s.drawingRaffle)

	s.mockUUID.EXPECT().NewUUID().Return("test-payout-id")

	payoutErr := errors.New("ledger write refused")

	gomock.InOrder(
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateOpen, input.Raffle.State)
				return nil
			}),
		s.mockPayoutRepo.EXPECT().
			RecordPayout(s.ctx, gomock.Any()).
			Return(payoutErr),
		// Rollback restores the pre-resolution state, still drawing with
		// the same outstanding request
		s.mockRaffleRepo.EXPECT().
			SaveRaffle(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *raffleRepo.SaveRaffleInput) error {
				s.Equal(models.RaffleStateDrawing, input.Raffle.State)
				s.Equal(s.testRequestID, input.Raffle.OutstandingRequestID)
				s.Equal(s.drawingRaffle.Players, input.Raffle.Players)
				s.Equal(int64(400), input.Raffle.Pool)
				return nil
			}),
	)

	_, err := svc.FulfillRandomness(s.ctx, &FulfillRandomnessInput{
		RequestID:  s.testRequestID,
		RandomWord: 7,
	})
	s.Require().ErrorIs(err, ErrPayoutFailed)
}

func (s *RaffleServiceTestSuite) TestGetStatus() {
	svc := s.newService()

	s.expectGetRaffle(s.readyRaffle)

	out, err := svc.GetStatus(s.ctx, &GetStatusInput{})
	s.Require().NoError(err)
	s.Equal(models.RaffleStateOpen, out.State)
	s.Equal(s.testFee, out.EntranceFee)
	s.Equal(s.testInterval, out.Interval)
	s.Equal(4, out.PlayerCount)
	s.Equal(int64(400), out.Pool)
	s.True(out.LastDrawTime.Equal(s.readyRaffle.LastDrawTime))
}

func (s *RaffleServiceTestSuite) TestGetPlayer() {
	svc := s.newService()

	s.expectGetRaffle(s.readyRaffle)

	out, err := svc.GetPlayer(s.ctx, &GetPlayerInput{Index: 2})
	s.Require().NoError(err)
	s.Equal("player-2", out.PlayerID)
}

func (s *RaffleServiceTestSuite) TestGetPlayerIndexOutOfRange() {
	svc := s.newService()

	s.expectGetRaffle(s.readyRaffle)

	_, err := svc.GetPlayer(s.ctx, &GetPlayerInput{Index: 4})
	s.Require().ErrorIs(err, ErrPlayerIndexOutOfRange)
}
