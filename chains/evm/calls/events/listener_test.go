package events_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/consts"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/events"
	mock_events "github.com/sprintertech/across-dataworker/chains/evm/calls/events/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	spokePool   = common.HexToAddress("0x6f26Bf09B1C792e3228e5467807a900A503c0281")
	hubPool     = common.HexToAddress("0xc186fA914353c44b2E33eBE05f21846F1048bEda")
	depositor   = common.HexToAddress("0x1000000000000000000000000000000000000001")
	recipient   = common.HexToAddress("0x2000000000000000000000000000000000000002")
	relayer     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	originToken = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
)

func depositLog(depositId int64, block uint64) ethTypes.Log {
	data, _ := consts.SpokePoolABI.Events["FundsDeposited"].Inputs.NonIndexed().Pack(
		big.NewInt(100),
		big.NewInt(1),
		big.NewInt(10),
		uint64(1e15),
		uint32(1700000000),
		recipient,
	)
	return ethTypes.Log{
		Address: spokePool,
		Topics: []common.Hash{
			events.FundsDepositedSig.GetTopic(),
			common.BigToHash(big.NewInt(depositId)),
			common.BytesToHash(originToken.Bytes()),
			common.BytesToHash(depositor.Bytes()),
		},
		Data:        data,
		BlockNumber: block,
		TxIndex:     2,
		Index:       5,
	}
}

func fillLog(isSlowRelay bool) ethTypes.Log {
	data, _ := consts.SpokePoolABI.Events["FilledRelay"].Inputs.NonIndexed().Pack(
		big.NewInt(100),
		big.NewInt(80),
		big.NewInt(30),
		big.NewInt(137),
		big.NewInt(1),
		big.NewInt(10),
		uint64(1e15),
		uint64(1e15),
		uint64(1e17),
		uint32(7),
		originToken,
		recipient,
		isSlowRelay,
	)
	return ethTypes.Log{
		Address: spokePool,
		Topics: []common.Hash{
			events.FilledRelaySig.GetTopic(),
			common.BytesToHash(relayer.Bytes()),
			common.BytesToHash(depositor.Bytes()),
		},
		Data:        data,
		BlockNumber: 200,
	}
}

type ListenerTestSuite struct {
	suite.Suite

	mockClient *mock_events.MockChainClient
	listener   *events.Listener
}

func TestRunListenerTestSuite(t *testing.T) {
	suite.Run(t, new(ListenerTestSuite))
}

func (s *ListenerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mock_events.NewMockChainClient(ctrl)
	s.listener = events.NewListener(s.mockClient)
}

func (s *ListenerTestSuite) Test_FetchFundsDeposited_FetchingFails() {
	s.mockClient.EXPECT().FetchEventLogs(
		gomock.Any(), spokePool, string(events.FundsDepositedSig), big.NewInt(1), big.NewInt(10),
	).Return(nil, errors.New("error"))

	deposits, err := s.listener.FetchFundsDeposited(context.Background(), spokePool, big.NewInt(1), big.NewInt(10))

	s.Nil(deposits)
	s.NotNil(err)
}

func (s *ListenerTestSuite) Test_FetchFundsDeposited_SkipsRemovedLogs() {
	removed := depositLog(8, 9)
	removed.Removed = true
	s.mockClient.EXPECT().FetchEventLogs(
		gomock.Any(), spokePool, string(events.FundsDepositedSig), big.NewInt(1), big.NewInt(10),
	).Return([]ethTypes.Log{depositLog(7, 5), removed}, nil)

	deposits, err := s.listener.FetchFundsDeposited(context.Background(), spokePool, big.NewInt(1), big.NewInt(10))

	s.Nil(err)
	s.Len(deposits, 1)
	d := deposits[0]
	s.Equal(uint32(7), d.DepositId)
	s.Equal(originToken, d.OriginToken)
	s.Equal(depositor, d.Depositor)
	s.Equal(recipient, d.Recipient)
	s.Equal("100", d.Amount.String())
	s.Equal("1", d.OriginChainId.String())
	s.Equal("10", d.DestinationChainId.String())
	s.Equal(uint64(1e15), d.RelayerFeePct)
	s.Equal(uint32(1700000000), d.QuoteTimestamp)
	s.Equal(events.Position{BlockNumber: 5, TransactionIndex: 2, LogIndex: 5}, d.Position)
}

func (s *ListenerTestSuite) Test_FetchFundsDeposited_InvalidLog() {
	invalid := depositLog(7, 5)
	invalid.Topics = invalid.Topics[:2]
	s.mockClient.EXPECT().FetchEventLogs(
		gomock.Any(), spokePool, string(events.FundsDepositedSig), gomock.Any(), gomock.Any(),
	).Return([]ethTypes.Log{invalid}, nil)

	_, err := s.listener.FetchFundsDeposited(context.Background(), spokePool, big.NewInt(1), big.NewInt(10))

	s.NotNil(err)
}

func (s *ListenerTestSuite) Test_FetchFilledRelays() {
	s.mockClient.EXPECT().FetchEventLogs(
		gomock.Any(), spokePool, string(events.FilledRelaySig), gomock.Any(), gomock.Any(),
	).Return([]ethTypes.Log{fillLog(false), fillLog(true)}, nil)

	fills, err := s.listener.FetchFilledRelays(context.Background(), spokePool, big.NewInt(1), big.NewInt(300))

	s.Nil(err)
	s.Len(fills, 2)
	f := fills[0]
	s.Equal(relayer, f.Relayer)
	s.Equal(depositor, f.Depositor)
	s.Equal(recipient, f.Recipient)
	s.Equal(originToken, f.DestinationToken)
	s.Equal("80", f.TotalFilledAmount.String())
	s.Equal("30", f.FillAmount.String())
	s.Equal("137", f.RepaymentChainId.String())
	s.Equal(uint64(1e17), f.RealizedLpFeePct)
	s.Equal(uint32(7), f.DepositId)
	s.Equal(uint64(200), f.BlockNumber)
	s.False(f.IsSlowRelay)
	s.True(fills[1].IsSlowRelay)
}

func (s *ListenerTestSuite) Test_FetchProposedRootBundles() {
	slowRelayRoot := common.HexToHash("0x03")
	data, err := consts.HubPoolABI.Events["ProposeRootBundle"].Inputs.NonIndexed().Pack(
		uint32(1700007200),
		uint8(2),
		[]*big.Int{big.NewInt(100), big.NewInt(200)},
		[32]byte(slowRelayRoot),
	)
	s.Nil(err)
	s.mockClient.EXPECT().FetchEventLogs(
		gomock.Any(), hubPool, string(events.ProposeRootBundleSig), gomock.Any(), gomock.Any(),
	).Return([]ethTypes.Log{{
		Address: hubPool,
		Topics: []common.Hash{
			events.ProposeRootBundleSig.GetTopic(),
			common.HexToHash("0x01"),
			common.HexToHash("0x02"),
			common.BytesToHash(relayer.Bytes()),
		},
		Data:        data,
		BlockNumber: 1000,
	}}, nil)

	bundles, err := s.listener.FetchProposedRootBundles(context.Background(), hubPool, big.NewInt(1), big.NewInt(2000))

	s.Nil(err)
	s.Len(bundles, 1)
	b := bundles[0]
	s.Equal(uint32(1700007200), b.ChallengePeriodEndTimestamp)
	s.Equal(uint8(2), b.PoolRebalanceLeafCount)
	s.Len(b.BundleEvaluationBlockNumbers, 2)
	s.Equal("200", b.BundleEvaluationBlockNumbers[1].String())
	s.Equal([32]byte(common.HexToHash("0x01")), b.PoolRebalanceRoot)
	s.Equal([32]byte(common.HexToHash("0x02")), b.RelayerRefundRoot)
	s.Equal([32]byte(slowRelayRoot), b.SlowRelayRoot)
	s.Equal(relayer, b.Proposer)
	s.Equal(uint64(1000), b.BlockNumber)
}

func (s *ListenerTestSuite) Test_EventSigTopics() {
	s.Equal(consts.SpokePoolABI.Events["FundsDeposited"].ID, events.FundsDepositedSig.GetTopic())
	s.Equal(consts.SpokePoolABI.Events["FilledRelay"].ID, events.FilledRelaySig.GetTopic())
	s.Equal(consts.HubPoolABI.Events["ProposeRootBundle"].ID, events.ProposeRootBundleSig.GetTopic())
}
