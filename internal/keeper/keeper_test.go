package keeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kgrady/raffled/internal/services/raffle"
	raffleMocks "github.com/kgrady/raffled/internal/services/raffle/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type KeeperTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *raffleMocks.MockService
	keeper      *Keeper
	ctx         context.Context
}

func (s *KeeperTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = raffleMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	keeper, err := New(&Config{
		RaffleService: s.mockService,
		PollInterval:  time.Minute,
	})
	s.Require().NoError(err)
	s.keeper = keeper
}

func (s *KeeperTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) TestTickPerformsUpkeepWhenReady() {
	s.mockService.EXPECT().
		CheckUpkeep(s.ctx, gomock.Any()).
		Return(&raffle.CheckUpkeepOutput{UpkeepNeeded: true, PerformData: []byte("opaque")}, nil)

	s.mockService.EXPECT().
		PerformUpkeep(s.ctx, &raffle.PerformUpkeepInput{PerformData: []byte("opaque")}).
		Return(&raffle.PerformUpkeepOutput{RequestID: "req-1"}, nil)

	s.keeper.tick(s.ctx)
}

func (s *KeeperTestSuite) TestTickSkipsWhenNotReady() {
	s.mockService.EXPECT().
		CheckUpkeep(s.ctx, gomock.Any()).
		Return(&raffle.CheckUpkeepOutput{UpkeepNeeded: false}, nil)

	// PerformUpkeep must not be called
	s.keeper.tick(s.ctx)
}

func (s *KeeperTestSuite) TestTickToleratesLostRace() {
	s.mockService.EXPECT().
		CheckUpkeep(s.ctx, gomock.Any()).
		Return(&raffle.CheckUpkeepOutput{UpkeepNeeded: true}, nil)

	s.mockService.EXPECT().
		PerformUpkeep(s.ctx, gomock.Any()).
		Return(nil, &raffle.UpkeepNotReadyError{State: "drawing"})

	s.keeper.tick(s.ctx)
}

func (s *KeeperTestSuite) TestTickSurvivesCheckError() {
	s.mockService.EXPECT().
		CheckUpkeep(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	s.keeper.tick(s.ctx)
}

func (s *KeeperTestSuite) TestStartStop() {
	s.keeper.Start()
	s.keeper.Stop()
}
