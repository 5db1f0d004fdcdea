package dataworker

import (
	"sort"

	"github.com/sprintertech/across-dataworker/merkle"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

// BuildSlowRelayRoot builds the tree of deposits the destination spoke pools have to
// complete with their own funds, ordered by origin chain and deposit id. Returns a
// nil tree if no deposit needs a slow relay.
func BuildSlowRelayRoot(unfilledDeposits []UnfilledDeposit) (*merkle.Tree[across.RelayData], error) {
	leaves := make([]across.RelayData, 0, len(unfilledDeposits))
	for _, d := range unfilledDeposits {
		if d.UnfilledAmount == nil || d.UnfilledAmount.Sign() <= 0 {
			continue
		}
		leaves = append(leaves, across.NewRelayData(d.Deposit))
	}
	if len(leaves) == 0 {
		return nil, nil
	}

	sort.Slice(leaves, func(i, j int) bool {
		return relayDataKey(leaves[i]).Less(relayDataKey(leaves[j]))
	})
	for i := 1; i < len(leaves); i++ {
		if relayDataKey(leaves[i-1]) == relayDataKey(leaves[i]) {
			return nil, &DuplicateOrderingKeyError{
				Tree: "slow relay",
				Key:  relayDataKey(leaves[i]).String(),
			}
		}
	}

	return merkle.NewTree(leaves, HashSlowRelayLeaf)
}

func relayDataKey(r across.RelayData) across.DepositKey {
	return across.DepositKey{OriginChainId: r.OriginChainId, DepositId: r.DepositId}
}
