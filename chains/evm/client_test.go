package evm_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/across-dataworker/chains/evm"
	mock_events "github.com/sprintertech/across-dataworker/chains/evm/calls/events/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConfirmedClientTestSuite struct {
	suite.Suite

	mockClient *mock_events.MockChainClient
	client     *evm.ConfirmedClient
}

func TestRunConfirmedClientTestSuite(t *testing.T) {
	suite.Run(t, new(ConfirmedClientTestSuite))
}

func (s *ConfirmedClientTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mock_events.NewMockChainClient(ctrl)
	s.client = evm.NewConfirmedClient(s.mockClient, 5)
}

func (s *ConfirmedClientTestSuite) Test_LatestBlock_Fails() {
	s.mockClient.EXPECT().LatestBlock().Return(nil, errors.New("error"))

	_, err := s.client.LatestBlock()

	s.NotNil(err)
}

func (s *ConfirmedClientTestSuite) Test_LatestBlock_SubtractsConfirmations() {
	s.mockClient.EXPECT().LatestBlock().Return(big.NewInt(100), nil)

	latest, err := s.client.LatestBlock()

	s.Nil(err)
	s.Equal(big.NewInt(95), latest)
}

func (s *ConfirmedClientTestSuite) Test_LatestBlock_BelowConfirmations() {
	s.mockClient.EXPECT().LatestBlock().Return(big.NewInt(3), nil)

	latest, err := s.client.LatestBlock()

	s.Nil(err)
	s.Equal(big.NewInt(0), latest)
}

func (s *ConfirmedClientTestSuite) Test_FetchEventLogs() {
	address := common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	logs := []ethTypes.Log{{BlockNumber: 10}}
	s.mockClient.EXPECT().FetchEventLogs(gomock.Any(), address, "event", big.NewInt(1), big.NewInt(10)).Return(logs, nil)

	actual, err := s.client.FetchEventLogs(context.Background(), address, "event", big.NewInt(1), big.NewInt(10))

	s.Nil(err)
	s.Equal(logs, actual)
}
