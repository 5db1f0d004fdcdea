package dataworker

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/across-dataworker/merkle"
)

type refundEntry struct {
	address common.Address
	amount  *big.Int
}

// relayerRefundLeafDraft is a refund leaf before leaf ids are assigned. groupIndex
// only orders the leaves of one (chain, token) group and is never hashed.
type relayerRefundLeafDraft struct {
	groupIndex      int
	chainId         uint64
	l2TokenAddress  common.Address
	amountToReturn  *big.Int
	refundAddresses []common.Address
	refundAmounts   []*big.Int
}

func (d relayerRefundLeafDraft) key() RefundKey {
	return RefundKey{ChainId: d.chainId, L2Token: d.l2TokenAddress}
}

// BuildRelayerRefundRoot builds the relayer refund tree. Every (chain, token) group is
// split into leaves of at most maxRefundsPerLeaf refunds. amountsToReturn, which may be
// nil, sets the amount each spoke pool sends back to the hub pool; it is carried by
// the first leaf of its group. Returns a nil tree if there is nothing to refund or
// return.
func BuildRelayerRefundRoot(
	fillsToRefund *FillsToRefund,
	maxRefundsPerLeaf int,
	amountsToReturn map[RefundKey]*big.Int,
) (*merkle.Tree[RelayerRefundLeaf], error) {
	if maxRefundsPerLeaf < 1 {
		return nil, fmt.Errorf("invalid max refunds per leaf %d", maxRefundsPerLeaf)
	}

	drafts := make([]relayerRefundLeafDraft, 0)
	grouped := make(map[RefundKey]bool)
	for _, group := range fillsToRefund.Groups() {
		key := RefundKey{ChainId: group.ChainId, L2Token: group.L2Token}
		grouped[key] = true

		entries, err := sortRefunds(group.Refunds)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, splitRefunds(key, entries, maxRefundsPerLeaf, amountsToReturn[key])...)
	}
	for key, amount := range amountsToReturn {
		if grouped[key] || amount.Sign() == 0 {
			continue
		}
		drafts = append(drafts, relayerRefundLeafDraft{
			groupIndex:      0,
			chainId:         key.ChainId,
			l2TokenAddress:  key.L2Token,
			amountToReturn:  new(big.Int).Set(amount),
			refundAddresses: []common.Address{},
			refundAmounts:   []*big.Int{},
		})
	}
	if len(drafts) == 0 {
		return nil, nil
	}

	leaves, err := finalizeRefundLeaves(drafts)
	if err != nil {
		return nil, err
	}
	for i, leaf := range leaves {
		if err := leaf.Validate(i); err != nil {
			return nil, err
		}
	}
	return merkle.NewTree(leaves, HashRelayerRefundLeaf)
}

// sortRefunds orders refunds by amount descending, then address ascending.
func sortRefunds(refunds map[common.Address]*big.Int) ([]refundEntry, error) {
	entries := make([]refundEntry, 0, len(refunds))
	for address, amount := range refunds {
		entries = append(entries, refundEntry{address: address, amount: amount})
	}
	return sortRefundEntries(entries)
}

func sortRefundEntries(entries []refundEntry) ([]refundEntry, error) {
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].amount.Cmp(entries[j].amount); c != 0 {
			return c > 0
		}
		return bytes.Compare(entries[i].address[:], entries[j].address[:]) < 0
	})
	for i := 1; i < len(entries); i++ {
		if entries[i-1].address == entries[i].address {
			return nil, &DuplicateOrderingKeyError{
				Tree: "relayer refund",
				Key:  fmt.Sprintf("relayer %s amount %s", entries[i].address.Hex(), entries[i].amount),
			}
		}
	}
	return entries, nil
}

// splitRefunds chunks the sorted refunds of one group into leaves.
func splitRefunds(key RefundKey, entries []refundEntry, maxRefundsPerLeaf int, amountToReturn *big.Int) []relayerRefundLeafDraft {
	drafts := make([]relayerRefundLeafDraft, 0, (len(entries)+maxRefundsPerLeaf-1)/maxRefundsPerLeaf)
	for start := 0; start < len(entries); start += maxRefundsPerLeaf {
		end := min(start+maxRefundsPerLeaf, len(entries))

		draft := relayerRefundLeafDraft{
			groupIndex:      start,
			chainId:         key.ChainId,
			l2TokenAddress:  key.L2Token,
			amountToReturn:  new(big.Int),
			refundAddresses: make([]common.Address, 0, end-start),
			refundAmounts:   make([]*big.Int, 0, end-start),
		}
		if start == 0 && amountToReturn != nil {
			draft.amountToReturn.Set(amountToReturn)
		}
		for _, e := range entries[start:end] {
			draft.refundAddresses = append(draft.refundAddresses, e.address)
			draft.refundAmounts = append(draft.refundAmounts, new(big.Int).Set(e.amount))
		}
		drafts = append(drafts, draft)
	}

	// a group whose refunds were all zero still has to return funds
	if len(drafts) == 0 && amountToReturn != nil && amountToReturn.Sign() != 0 {
		drafts = append(drafts, relayerRefundLeafDraft{
			chainId:         key.ChainId,
			l2TokenAddress:  key.L2Token,
			amountToReturn:  new(big.Int).Set(amountToReturn),
			refundAddresses: []common.Address{},
			refundAmounts:   []*big.Int{},
		})
	}
	return drafts
}

// finalizeRefundLeaves sorts the drafts by chain, token and group index and assigns
// leaf ids by position.
func finalizeRefundLeaves(drafts []relayerRefundLeafDraft) ([]RelayerRefundLeaf, error) {
	sort.Slice(drafts, func(i, j int) bool {
		ki, kj := drafts[i].key(), drafts[j].key()
		if ki != kj {
			return ki.Less(kj)
		}
		return drafts[i].groupIndex < drafts[j].groupIndex
	})

	leaves := make([]RelayerRefundLeaf, len(drafts))
	for i, draft := range drafts {
		if i > 0 && drafts[i-1].key() == draft.key() && drafts[i-1].groupIndex == draft.groupIndex {
			return nil, &DuplicateOrderingKeyError{
				Tree: "relayer refund",
				Key:  fmt.Sprintf("%s group %d", draft.key(), draft.groupIndex),
			}
		}

		leaves[i] = RelayerRefundLeaf{
			// nolint:gosec
			LeafId:          uint32(i),
			ChainId:         draft.chainId,
			L2TokenAddress:  draft.l2TokenAddress,
			AmountToReturn:  draft.amountToReturn,
			RefundAddresses: draft.refundAddresses,
			RefundAmounts:   draft.refundAmounts,
		}
	}
	return leaves, nil
}
