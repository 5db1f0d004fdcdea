package dataworker

import (
	"fmt"
	"math/big"

	"github.com/sprintertech/across-dataworker/protocol/across"
)

// RunningBalances computes the net amount every spoke pool has to receive from or send
// to the hub pool for this bundle, per l1 token. The balances are bundle deltas:
// balances carried over from previously executed bundles are not included.
func (d *Dataworker) RunningBalances(data *BundleData, chainIds []uint64) (*RunningBalances, error) {
	balances := NewRunningBalances()

	for _, group := range data.FillsToRefund.Groups() {
		l1Token, err := d.registry.L1TokenCounterpart(group.ChainId, group.L2Token)
		if err != nil {
			return nil, fmt.Errorf("no l1 token for %s on chain %d: %w", group.L2Token.Hex(), group.ChainId, err)
		}
		balances.addBalance(group.ChainId, l1Token, group.TotalRefundAmount)
		balances.addLpFee(group.ChainId, l1Token, group.RealizedLpFees)
	}

	err := d.subtractExcessFromPreviousSlowFills(balances, data, chainIds)
	if err != nil {
		return nil, err
	}

	for _, deposit := range data.Deposits {
		l1Token, err := d.registry.L1TokenForDeposit(deposit)
		if err != nil {
			return nil, fmt.Errorf("no l1 token for deposit %s: %w", deposit.Key(), err)
		}
		balances.addBalance(deposit.OriginChainId, l1Token, new(big.Int).Neg(deposit.Amount))
	}

	return balances, nil
}

// subtractExcessFromPreviousSlowFills pulls back to the hub pool what a spoke pool
// received for a slow relay but did not spend. A previous bundle sent the unfilled
// amount of the deposit at the end of its block range; if relayers filled part of it
// before the slow relay executed, the slow fill pays out less than that.
func (d *Dataworker) subtractExcessFromPreviousSlowFills(balances *RunningBalances, data *BundleData, chainIds []uint64) error {
	fills := data.AllValidFills
	seen := make(map[across.DepositKey]bool)
	for _, fill := range fills {
		if !fill.IsSlowRelay || fill.FillAmount.Sign() == 0 {
			continue
		}
		// only the first slow fill of a deposit counts, even if an earlier bundle held it
		key := fill.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		if r, ok := data.BlockRanges[fill.DestinationChainId]; ok && !r.Contains(fill.BlockNumber) {
			continue
		}

		excess, err := d.slowFillExcess(fill, fills, chainIds)
		if err != nil {
			return err
		}
		if excess.Sign() == 0 {
			continue
		}

		l1Token, err := d.registry.L1TokenCounterpart(fill.DestinationChainId, fill.DestinationToken)
		if err != nil {
			return fmt.Errorf("no l1 token for %s on chain %d: %w", fill.DestinationToken.Hex(), fill.DestinationChainId, err)
		}
		d.log.Debug().
			Str("deposit", key.String()).
			Str("excess", excess.String()).
			Msg("Subtracting slow fill excess from running balance")
		balances.addBalance(fill.DestinationChainId, l1Token, new(big.Int).Neg(excess))
	}
	return nil
}

// slowFillExcess finds the bundle whose slow relay root included the deposit and returns
// the amount sent for the slow relay minus the amount the slow fill actually paid.
// fills must be ordered by position on chain.
func (d *Dataworker) slowFillExcess(slowFill across.FillWithBlock, fills []across.FillWithBlock, chainIds []uint64) (*big.Int, error) {
	var firstFill *across.FillWithBlock
	for i := range fills {
		if !fills[i].IsSlowRelay && fills[i].FilledSameDeposit(slowFill.Fill) {
			firstFill = &fills[i]
			break
		}
	}
	if firstFill == nil {
		return nil, &MissingReferenceFillError{
			Deposit: slowFill.Key(),
			Reason:  "no relayer fill preceding slow fill",
		}
	}

	endBlock, err := d.registry.RootBundleEvalBlockNumberContainingBlock(firstFill.BlockNumber, firstFill.DestinationChainId, chainIds)
	if err != nil {
		return nil, &MissingReferenceFillError{
			Deposit: slowFill.Key(),
			Reason:  fmt.Sprintf("no root bundle containing block %d", firstFill.BlockNumber),
			Err:     err,
		}
	}

	var lastFill *across.FillWithBlock
	for i := range fills {
		f := &fills[i]
		if f.IsSlowRelay || !f.FilledSameDeposit(slowFill.Fill) || f.BlockNumber > endBlock {
			continue
		}
		lastFill = f
	}
	if lastFill == nil {
		return nil, &MissingReferenceFillError{
			Deposit: slowFill.Key(),
			Reason:  fmt.Sprintf("no relayer fill before block %d", endBlock),
		}
	}

	amountSentForSlowFill := new(big.Int).Sub(lastFill.Amount, lastFill.TotalFilledAmount)
	return amountSentForSlowFill.Sub(amountSentForSlowFill, slowFill.FillAmount), nil
}
