package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sprintertech/across-dataworker/dataworker"
	"github.com/sprintertech/across-dataworker/jobs"
	mock_jobs "github.com/sprintertech/across-dataworker/jobs/mock"
	"github.com/sprintertech/across-dataworker/protocol/across"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BundleJobTestSuite struct {
	suite.Suite

	mockBuilder   *mock_jobs.MockBundleBuilder
	mockHubPool   *mock_jobs.MockRootBundleSource
	mockMetrics   *mock_jobs.MockClientMetrics
	mockEthereum  *mock_jobs.MockEventClient
	mockOptimism  *mock_jobs.MockEventClient
	bundleChn     chan *dataworker.Bundle
	job           *jobs.BundleJob
	expectedChain []uint64
}

func TestRunBundleJobTestSuite(t *testing.T) {
	suite.Run(t, new(BundleJobTestSuite))
}

func (s *BundleJobTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockBuilder = mock_jobs.NewMockBundleBuilder(ctrl)
	s.mockHubPool = mock_jobs.NewMockRootBundleSource(ctrl)
	s.mockMetrics = mock_jobs.NewMockClientMetrics(ctrl)
	s.mockEthereum = mock_jobs.NewMockEventClient(ctrl)
	s.mockEthereum.EXPECT().ChainID().Return(uint64(1)).AnyTimes()
	s.mockEthereum.EXPECT().LatestBlockSearched().Return(uint64(200)).AnyTimes()
	s.mockOptimism = mock_jobs.NewMockEventClient(ctrl)
	s.mockOptimism.EXPECT().ChainID().Return(uint64(10)).AnyTimes()
	s.mockOptimism.EXPECT().LatestBlockSearched().Return(uint64(2000)).AnyTimes()
	s.bundleChn = make(chan *dataworker.Bundle)
	s.expectedChain = []uint64{1, 10}

	s.job = jobs.NewBundleJob(
		s.mockBuilder,
		[]jobs.EventClient{s.mockEthereum, s.mockOptimism},
		s.mockHubPool,
		s.mockMetrics,
		s.bundleChn,
	)
}

func (s *BundleJobTestSuite) expectUpdates() {
	s.mockEthereum.EXPECT().Update(gomock.Any()).Return(nil)
	s.mockOptimism.EXPECT().Update(gomock.Any()).Return(nil)
	s.mockHubPool.EXPECT().Update(gomock.Any()).Return(nil)
}

func (s *BundleJobTestSuite) Test_Build_SpokeUpdateFails() {
	s.mockEthereum.EXPECT().Update(gomock.Any()).Return(nil)
	s.mockOptimism.EXPECT().Update(gomock.Any()).Return(errors.New("error"))
	s.mockEthereum.EXPECT().IsUpdated().Return(true)
	s.mockOptimism.EXPECT().IsUpdated().Return(false)
	s.mockMetrics.EXPECT().TrackClientUpdateFailure(uint64(10))

	_, err := s.job.Build(context.Background())

	s.NotNil(err)
}

func (s *BundleJobTestSuite) Test_Build_HubPoolUpdateFails() {
	s.mockEthereum.EXPECT().Update(gomock.Any()).Return(nil)
	s.mockOptimism.EXPECT().Update(gomock.Any()).Return(nil)
	s.mockHubPool.EXPECT().Update(gomock.Any()).Return(errors.New("error"))

	_, err := s.job.Build(context.Background())

	s.NotNil(err)
}

func (s *BundleJobTestSuite) Test_Build_NoProposedBundle() {
	s.expectUpdates()
	s.mockHubPool.EXPECT().LatestRootBundle().Return(across.RootBundle{}, false)
	expectedBundle := &dataworker.Bundle{}
	s.mockBuilder.EXPECT().BuildBundle(s.expectedChain, map[uint64]dataworker.BlockRange{
		1:  {Start: 0, End: 200},
		10: {Start: 0, End: 2000},
	}).Return(expectedBundle, nil)

	bundle, err := s.job.Build(context.Background())

	s.Nil(err)
	s.Equal(expectedBundle, bundle)
}

func (s *BundleJobTestSuite) Test_Build_BuildFails() {
	s.expectUpdates()
	s.mockHubPool.EXPECT().LatestRootBundle().Return(across.RootBundle{}, false)
	s.mockBuilder.EXPECT().BuildBundle(gomock.Any(), gomock.Any()).Return(nil, &dataworker.StaleSourceError{ChainId: 10})

	_, err := s.job.Build(context.Background())

	var staleErr *dataworker.StaleSourceError
	s.ErrorAs(err, &staleErr)
}

func (s *BundleJobTestSuite) Test_BlockRanges_AfterProposedBundle() {
	s.mockHubPool.EXPECT().LatestRootBundle().Return(across.RootBundle{
		BundleEvaluationBlockNumbers: []uint64{100, 1000},
	}, true)

	ranges := s.job.BlockRanges(s.expectedChain)

	s.Equal(map[uint64]dataworker.BlockRange{
		1:  {Start: 101, End: 200},
		10: {Start: 1001, End: 2000},
	}, ranges)
}

func (s *BundleJobTestSuite) Test_BlockRanges_ChainMissingFromProposedBundle() {
	s.mockHubPool.EXPECT().LatestRootBundle().Return(across.RootBundle{
		BundleEvaluationBlockNumbers: []uint64{100},
	}, true)

	ranges := s.job.BlockRanges(s.expectedChain)

	s.Equal(dataworker.BlockRange{Start: 0, End: 2000}, ranges[10])
}

func (s *BundleJobTestSuite) Test_Start_SendsBuiltBundle() {
	s.expectUpdates()
	s.mockHubPool.EXPECT().LatestRootBundle().Return(across.RootBundle{}, false)
	expectedBundle := &dataworker.Bundle{}
	s.mockBuilder.EXPECT().BuildBundle(gomock.Any(), gomock.Any()).Return(expectedBundle, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.job.Start(ctx, time.Hour)

	bundle := <-s.bundleChn
	s.Equal(expectedBundle, bundle)
}
