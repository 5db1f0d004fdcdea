package dataworker

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

type unfilledSample struct {
	unfilledAmount      *big.Int
	hasFirstPartialFill bool
}

// LoadData matches the fills of every chain against the deposits of every other chain
// and groups the matched fills by refund target.
//
// Fills and deposits outside of the block ranges are only kept in AllValidFills, where
// the slow fill excess computation looks for fills of previous bundles.
func (d *Dataworker) LoadData(chainIds []uint64, blockRanges map[uint64]BlockRange) (*BundleData, error) {
	for _, chainId := range chainIds {
		client, ok := d.spokeClients[chainId]
		if !ok {
			return nil, fmt.Errorf("no spoke pool client for chain %d", chainId)
		}
		if !client.IsUpdated() {
			return nil, &StaleSourceError{ChainId: chainId}
		}
		if _, ok := blockRanges[chainId]; !ok {
			return nil, fmt.Errorf("no block range for chain %d", chainId)
		}
	}

	data := &BundleData{
		FillsToRefund: NewFillsToRefund(),
		AllValidFills: make([]across.FillWithBlock, 0),
		Deposits:      make([]across.Deposit, 0),
		Warnings:      make([]UnmatchedFillWarning, 0),
		BlockRanges:   blockRanges,
	}
	samples := make(map[across.DepositKey][]unfilledSample)
	deposits := make(map[across.DepositKey]across.Deposit)

	for _, originChainId := range chainIds {
		originClient := d.spokeClients[originChainId]
		originRange := blockRanges[originChainId]

		for _, destinationChainId := range chainIds {
			if originChainId == destinationChainId {
				continue
			}
			destinationClient := d.spokeClients[destinationChainId]
			destinationRange := blockRanges[destinationChainId]

			for _, deposit := range originClient.DepositsForDestinationChain(destinationChainId) {
				if originRange.Contains(deposit.BlockNumber) {
					data.Deposits = append(data.Deposits, deposit)
				}
			}

			for _, fill := range destinationClient.FillsWithBlockForOriginChain(originChainId) {
				deposit := originClient.DepositForFill(fill.Fill)
				if deposit == nil {
					warning := UnmatchedFillWarning{Fill: fill}
					data.Warnings = append(data.Warnings, warning)
					d.log.Warn().
						Uint64("originChainId", originChainId).
						Uint64("destinationChainId", destinationChainId).
						Uint32("depositId", fill.DepositId).
						Msg(warning.String())
					if d.metrics != nil {
						d.metrics.TrackDroppedFill(destinationChainId)
					}
					continue
				}

				data.AllValidFills = append(data.AllValidFills, fill)
				if !destinationRange.Contains(fill.BlockNumber) {
					continue
				}

				err := d.addRefundForFill(data.FillsToRefund, fill, *deposit)
				if err != nil {
					return nil, err
				}

				key := deposit.Key()
				deposits[key] = *deposit
				samples[key] = append(samples[key], unfilledSample{
					unfilledAmount: new(big.Int).Sub(deposit.Amount, fill.TotalFilledAmount),
					hasFirstPartialFill: fill.FillAmount.Cmp(fill.TotalFilledAmount) == 0 &&
						fill.FillAmount.Sign() > 0,
				})
			}
		}
	}

	sort.SliceStable(data.AllValidFills, func(i, j int) bool {
		a, b := data.AllValidFills[i], data.AllValidFills[j]
		if a.DestinationChainId != b.DestinationChainId {
			return a.DestinationChainId < b.DestinationChainId
		}
		return a.Before(b)
	})

	data.UnfilledDeposits = reduceUnfilledDeposits(deposits, samples)

	d.log.Debug().
		Int("deposits", len(data.Deposits)).
		Int("validFills", len(data.AllValidFills)).
		Int("unfilledDeposits", len(data.UnfilledDeposits)).
		Int("refundGroups", data.FillsToRefund.Len()).
		Msg("Loaded bundle data")
	return data, nil
}

// addRefundForFill adds the fill to the refund group of the chain it is reimbursed on.
// Only relayers are refunded; slow fills still count towards the group totals since
// the spoke pool paid for them.
func (d *Dataworker) addRefundForFill(fillsToRefund *FillsToRefund, fill across.FillWithBlock, deposit across.Deposit) error {
	refundChainId := fill.RefundChainId()
	refundToken, err := d.refundToken(fill.Fill, refundChainId)
	if err != nil {
		return err
	}

	group := fillsToRefund.group(refundChainId, refundToken)
	group.Fills = append(group.Fills, fill)

	refund := Refund(fill.FillAmount, deposit.RealizedLpFeePct)
	if !fill.IsSlowRelay {
		group.addRefund(fill.Relayer, refund)
	}
	group.TotalRefundAmount.Add(group.TotalRefundAmount, refund)
	group.RealizedLpFees.Add(group.RealizedLpFees, RealizedLpFee(fill.FillAmount, deposit.RealizedLpFeePct))
	return nil
}

// refundToken returns the token a fill is reimbursed with on the refund chain.
func (d *Dataworker) refundToken(fill across.Fill, refundChainId uint64) (common.Address, error) {
	if refundChainId == fill.DestinationChainId {
		return fill.DestinationToken, nil
	}

	l1Token, err := d.registry.L1TokenCounterpart(fill.DestinationChainId, fill.DestinationToken)
	if err != nil {
		return common.Address{}, fmt.Errorf("no l1 token for %s on chain %d: %w", fill.DestinationToken.Hex(), fill.DestinationChainId, err)
	}
	l2Token, err := d.registry.L2TokenForL1Token(refundChainId, l1Token)
	if err != nil {
		return common.Address{}, fmt.Errorf("no repayment token for %s on chain %d: %w", l1Token.Hex(), refundChainId, err)
	}
	return l2Token, nil
}

// reduceUnfilledDeposits keeps the smallest unfilled amount of every deposit that had
// its first fill in this bundle and is not completely filled.
func reduceUnfilledDeposits(deposits map[across.DepositKey]across.Deposit, samples map[across.DepositKey][]unfilledSample) []UnfilledDeposit {
	unfilled := make([]UnfilledDeposit, 0)
	for key, depositSamples := range samples {
		hasFirstPartialFill := false
		var minUnfilled *big.Int
		for _, s := range depositSamples {
			if s.hasFirstPartialFill {
				hasFirstPartialFill = true
			}
			if minUnfilled == nil || s.unfilledAmount.Cmp(minUnfilled) < 0 {
				minUnfilled = s.unfilledAmount
			}
		}
		if !hasFirstPartialFill || minUnfilled.Sign() <= 0 {
			continue
		}

		unfilled = append(unfilled, UnfilledDeposit{
			Deposit:             deposits[key],
			UnfilledAmount:      new(big.Int).Set(minUnfilled),
			HasFirstPartialFill: true,
		})
	}

	sort.Slice(unfilled, func(i, j int) bool {
		return unfilled[i].Deposit.Key().Less(unfilled[j].Deposit.Key())
	})
	return unfilled
}

// Refund is the amount a relayer receives for a fill: the fill amount minus the
// realized LP fee.
func Refund(fillAmount *big.Int, realizedLpFeePct *big.Int) *big.Int {
	pct := new(big.Int).Sub(across.FIXED_POINT_ONE, realizedLpFeePct)
	refund := new(big.Int).Mul(fillAmount, pct)
	return refund.Quo(refund, across.FIXED_POINT_ONE)
}

// RealizedLpFee is the share of a fill kept by the liquidity providers.
func RealizedLpFee(fillAmount *big.Int, realizedLpFeePct *big.Int) *big.Int {
	fee := new(big.Int).Mul(fillAmount, realizedLpFeePct)
	return fee.Quo(fee, across.FIXED_POINT_ONE)
}
