package dataworker

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	mock_dataworker "github.com/sprintertech/across-dataworker/dataworker/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	wethL1 = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	usdcL1 = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	usdcL2 = common.HexToAddress("0x7F5c764cBc14f9669B88837ca1490cCa17c31607")
)

type PoolRebalanceTestSuite struct {
	suite.Suite

	mockRegistry *mock_dataworker.MockTokenRegistry
}

func TestRunPoolRebalanceTestSuite(t *testing.T) {
	suite.Run(t, new(PoolRebalanceTestSuite))
}

func (s *PoolRebalanceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockRegistry = mock_dataworker.NewMockTokenRegistry(ctrl)
}

func (s *PoolRebalanceTestSuite) Test_BuildPoolRebalanceRoot_Empty() {
	tree, err := BuildPoolRebalanceRoot(NewRunningBalances())

	s.Nil(err)
	s.Nil(tree)
}

func (s *PoolRebalanceTestSuite) Test_BuildPoolRebalanceRoot_OneLeafPerChain() {
	balances := NewRunningBalances()
	balances.addBalance(10, wethL1, big.NewInt(-5))
	balances.addBalance(10, usdcL1, big.NewInt(100))
	balances.addLpFee(10, usdcL1, big.NewInt(3))
	balances.addBalance(1, wethL1, big.NewInt(7))

	tree, err := BuildPoolRebalanceRoot(balances)
	s.Nil(err)

	leaves := tree.Leaves()
	s.Len(leaves, 2)
	s.Equal(uint64(1), leaves[0].ChainId)
	s.Equal(uint8(0), leaves[0].LeafId)
	s.Equal([]common.Address{wethL1}, leaves[0].L1Tokens)
	s.Equal(uint64(10), leaves[1].ChainId)
	s.Equal(uint8(1), leaves[1].LeafId)
	s.Equal(uint8(0), leaves[1].GroupIndex)
	s.Equal([]common.Address{usdcL1, wethL1}, leaves[1].L1Tokens)
	s.Equal("100", leaves[1].NetSendAmounts[0].String())
	s.Equal("-5", leaves[1].RunningBalances[1].String())
	s.Equal("3", leaves[1].BundleLpFees[0].String())
	s.Equal("0", leaves[1].BundleLpFees[1].String())
}

func (s *PoolRebalanceTestSuite) Test_BuildPoolRebalanceRoot_BalanceOverflowsInt256() {
	balances := NewRunningBalances()
	balances.addBalance(10, wethL1, new(big.Int).Lsh(big.NewInt(1), 255))

	tree, err := BuildPoolRebalanceRoot(balances)

	s.Nil(tree)
	var malformedErr *MalformedLeafError
	s.True(errors.As(err, &malformedErr))
	s.Equal(0, malformedErr.LeafIndex)
}

func (s *PoolRebalanceTestSuite) Test_AmountsToReturn_NegativeBalances() {
	balances := NewRunningBalances()
	balances.addBalance(10, usdcL1, big.NewInt(-40))
	balances.addBalance(10, wethL1, big.NewInt(40))
	s.mockRegistry.EXPECT().L2TokenForL1Token(uint64(10), usdcL1).Return(usdcL2, nil)

	amounts, err := AmountsToReturn(balances, s.mockRegistry)

	s.Nil(err)
	s.Len(amounts, 1)
	s.Equal("40", amounts[RefundKey{ChainId: 10, L2Token: usdcL2}].String())
	s.Equal("-40", balances.Balance(10, usdcL1).String())
}

func (s *PoolRebalanceTestSuite) Test_AmountsToReturn_MissingRoute() {
	balances := NewRunningBalances()
	balances.addBalance(10, usdcL1, big.NewInt(-40))
	s.mockRegistry.EXPECT().L2TokenForL1Token(uint64(10), usdcL1).Return(common.Address{}, errors.New("error"))

	amounts, err := AmountsToReturn(balances, s.mockRegistry)

	s.Nil(amounts)
	s.NotNil(err)
}
