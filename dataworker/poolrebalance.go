package dataworker

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/across-dataworker/merkle"
)

// BuildPoolRebalanceRoot formats the running balances into one pool rebalance leaf per
// chain, ordered by chain id with l1 tokens ordered by address. Net send amounts equal
// the running balances. Returns a nil tree if there are no balances.
func BuildPoolRebalanceRoot(balances *RunningBalances) (*merkle.Tree[PoolRebalanceLeaf], error) {
	if balances == nil || balances.Len() == 0 {
		return nil, nil
	}

	leaves := make([]PoolRebalanceLeaf, 0)
	for _, key := range balances.Keys() {
		if len(leaves) == 0 || leaves[len(leaves)-1].ChainId != key.ChainId {
			if len(leaves) > math.MaxUint8 {
				return nil, &MalformedLeafError{
					LeafIndex: len(leaves),
					Reason:    "leaf id overflows uint8",
				}
			}
			leaves = append(leaves, PoolRebalanceLeaf{
				ChainId:         key.ChainId,
				BundleLpFees:    make([]*big.Int, 0),
				NetSendAmounts:  make([]*big.Int, 0),
				RunningBalances: make([]*big.Int, 0),
				GroupIndex:      0,
				// nolint:gosec
				LeafId:   uint8(len(leaves)),
				L1Tokens: make([]common.Address, 0),
			})
		}

		leaf := &leaves[len(leaves)-1]
		balance := balances.Balance(key.ChainId, key.L1Token)
		leaf.L1Tokens = append(leaf.L1Tokens, key.L1Token)
		leaf.BundleLpFees = append(leaf.BundleLpFees, balances.LpFee(key.ChainId, key.L1Token))
		leaf.NetSendAmounts = append(leaf.NetSendAmounts, balance)
		leaf.RunningBalances = append(leaf.RunningBalances, new(big.Int).Set(balance))
	}

	for i, leaf := range leaves {
		if err := leaf.Validate(i); err != nil {
			return nil, err
		}
	}
	return merkle.NewTree(leaves, HashPoolRebalanceLeaf)
}

// AmountsToReturn maps every negative running balance to the amount the spoke pool has
// to send back to the hub pool, keyed by the spoke's token.
func AmountsToReturn(balances *RunningBalances, registry TokenRegistry) (map[RefundKey]*big.Int, error) {
	amounts := make(map[RefundKey]*big.Int)
	for _, key := range balances.Keys() {
		balance := balances.Balance(key.ChainId, key.L1Token)
		if balance.Sign() >= 0 {
			continue
		}

		l2Token, err := registry.L2TokenForL1Token(key.ChainId, key.L1Token)
		if err != nil {
			return nil, fmt.Errorf("no l2 token for %s on chain %d: %w", key.L1Token.Hex(), key.ChainId, err)
		}
		amounts[RefundKey{ChainId: key.ChainId, L2Token: l2Token}] = balance.Neg(balance)
	}
	return amounts, nil
}
