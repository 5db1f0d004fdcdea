package dataworker

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

var (
	refundRelayerA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	refundRelayerB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	refundRelayerC = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	refundL2Token  = common.HexToAddress("0x4200000000000000000000000000000000000006")
)

type RefundsTestSuite struct {
	suite.Suite
}

func TestRunRefundsTestSuite(t *testing.T) {
	suite.Run(t, new(RefundsTestSuite))
}

func (s *RefundsTestSuite) Test_sortRefunds_EqualAmountsOrderedByAscendingAddress() {
	entries, err := sortRefunds(map[common.Address]*big.Int{
		refundRelayerC: big.NewInt(30),
		refundRelayerB: big.NewInt(50),
		refundRelayerA: big.NewInt(50),
	})

	s.Nil(err)
	s.Len(entries, 3)
	s.Equal(refundRelayerA, entries[0].address)
	s.Equal(refundRelayerB, entries[1].address)
	s.Equal(refundRelayerC, entries[2].address)
	s.Equal("30", entries[2].amount.String())
}

func (s *RefundsTestSuite) Test_sortRefundEntries_DuplicateRelayer() {
	_, err := sortRefundEntries([]refundEntry{
		{address: refundRelayerA, amount: big.NewInt(50)},
		{address: refundRelayerB, amount: big.NewInt(40)},
		{address: refundRelayerA, amount: big.NewInt(50)},
	})

	var duplicateErr *DuplicateOrderingKeyError
	s.True(errors.As(err, &duplicateErr))
	s.Equal("relayer refund", duplicateErr.Tree)
	s.Contains(duplicateErr.Key, refundRelayerA.Hex())
}

func (s *RefundsTestSuite) Test_splitRefunds_ChunksWithGroupIndex() {
	entries := make([]refundEntry, 0)
	for i := 5; i > 0; i-- {
		entries = append(entries, refundEntry{
			address: common.BigToAddress(big.NewInt(int64(i))),
			amount:  big.NewInt(int64(i * 10)),
		})
	}
	key := RefundKey{ChainId: 10, L2Token: refundL2Token}

	drafts := splitRefunds(key, entries, 2, big.NewInt(7))

	s.Len(drafts, 3)
	s.Equal([]int{2, 2, 1}, []int{
		len(drafts[0].refundAddresses),
		len(drafts[1].refundAddresses),
		len(drafts[2].refundAddresses),
	})
	s.Equal([]int{0, 2, 4}, []int{drafts[0].groupIndex, drafts[1].groupIndex, drafts[2].groupIndex})
	s.Equal("7", drafts[0].amountToReturn.String())
	s.Equal("0", drafts[1].amountToReturn.String())
	s.Equal("0", drafts[2].amountToReturn.String())
	s.Equal(common.BigToAddress(big.NewInt(1)), drafts[2].refundAddresses[0])
	for _, draft := range drafts {
		s.Equal(key, draft.key())
		s.Equal(len(draft.refundAddresses), len(draft.refundAmounts))
	}
}

func (s *RefundsTestSuite) Test_splitRefunds_NoRefundsWithAmountToReturn() {
	drafts := splitRefunds(RefundKey{ChainId: 10, L2Token: refundL2Token}, []refundEntry{}, 2, big.NewInt(7))

	s.Len(drafts, 1)
	s.Equal("7", drafts[0].amountToReturn.String())
	s.Len(drafts[0].refundAddresses, 0)
}

func (s *RefundsTestSuite) Test_finalizeRefundLeaves_DuplicateGroupIndex() {
	draft := relayerRefundLeafDraft{
		chainId:         10,
		l2TokenAddress:  refundL2Token,
		amountToReturn:  new(big.Int),
		refundAddresses: []common.Address{refundRelayerA},
		refundAmounts:   []*big.Int{big.NewInt(1)},
	}

	_, err := finalizeRefundLeaves([]relayerRefundLeafDraft{draft, draft})

	var duplicateErr *DuplicateOrderingKeyError
	s.True(errors.As(err, &duplicateErr))
}

func (s *RefundsTestSuite) Test_finalizeRefundLeaves_LeafIdsAfterSort() {
	leaves, err := finalizeRefundLeaves([]relayerRefundLeafDraft{
		{groupIndex: 2, chainId: 10, l2TokenAddress: refundL2Token, amountToReturn: new(big.Int)},
		{groupIndex: 0, chainId: 137, l2TokenAddress: refundL2Token, amountToReturn: new(big.Int)},
		{groupIndex: 0, chainId: 10, l2TokenAddress: refundL2Token, amountToReturn: big.NewInt(3)},
	})

	s.Nil(err)
	s.Len(leaves, 3)
	s.Equal(uint64(10), leaves[0].ChainId)
	s.Equal("3", leaves[0].AmountToReturn.String())
	s.Equal(uint64(10), leaves[1].ChainId)
	s.Equal(uint64(137), leaves[2].ChainId)
	for i, leaf := range leaves {
		s.Equal(uint32(i), leaf.LeafId)
	}
}

func (s *RefundsTestSuite) Test_BuildRelayerRefundRoot_InvalidMaxRefunds() {
	tree, err := BuildRelayerRefundRoot(NewFillsToRefund(), 0, nil)

	s.Nil(tree)
	s.NotNil(err)
}

func (s *RefundsTestSuite) Test_BuildRelayerRefundRoot_Empty() {
	tree, err := BuildRelayerRefundRoot(NewFillsToRefund(), 25, map[RefundKey]*big.Int{
		{ChainId: 10, L2Token: refundL2Token}: new(big.Int),
	})

	s.Nil(err)
	s.Nil(tree)
}

func (s *RefundsTestSuite) Test_BuildRelayerRefundRoot_AccumulatesRelayerRefunds() {
	fillsToRefund := NewFillsToRefund()
	group := fillsToRefund.group(10, refundL2Token)
	group.addRefund(refundRelayerA, big.NewInt(10))
	group.addRefund(refundRelayerB, big.NewInt(15))
	group.addRefund(refundRelayerA, big.NewInt(10))

	tree, err := BuildRelayerRefundRoot(fillsToRefund, 25, nil)

	s.Nil(err)
	s.Equal(1, tree.Len())
	leaf, err := tree.Leaf(0)
	s.Nil(err)
	s.Equal([]common.Address{refundRelayerA, refundRelayerB}, leaf.RefundAddresses)
	s.Equal("20", leaf.RefundAmounts[0].String())
	s.Equal("15", leaf.RefundAmounts[1].String())
	s.Equal("0", leaf.AmountToReturn.String())
}
