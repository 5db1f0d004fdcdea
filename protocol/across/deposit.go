package across

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/events"
)

// DepositEnricher resolves what a FundsDeposited event does not carry.
type DepositEnricher interface {
	DestinationTokenForDeposit(deposit Deposit) (common.Address, error)
	RealizedLpFeePct(deposit Deposit) (*big.Int, error)
}

func parseDeposit(chainID uint64, e events.FundsDeposited, enricher DepositEnricher) (*Deposit, error) {
	if !e.OriginChainId.IsUint64() || e.OriginChainId.Uint64() != chainID {
		return nil, fmt.Errorf("deposit %d has origin chain %s on chain %d", e.DepositId, e.OriginChainId, chainID)
	}
	if !e.DestinationChainId.IsUint64() {
		return nil, fmt.Errorf("deposit %d has invalid destination chain %s", e.DepositId, e.DestinationChainId)
	}

	d := &Deposit{
		DepositId:          e.DepositId,
		Depositor:          e.Depositor,
		Recipient:          e.Recipient,
		OriginToken:        e.OriginToken,
		Amount:             e.Amount,
		OriginChainId:      chainID,
		DestinationChainId: e.DestinationChainId.Uint64(),
		RelayerFeePct:      new(big.Int).SetUint64(e.RelayerFeePct),
		QuoteTimestamp:     e.QuoteTimestamp,
		BlockNumber:        e.BlockNumber,
	}

	destinationToken, err := enricher.DestinationTokenForDeposit(*d)
	if err != nil {
		return nil, err
	}
	d.DestinationToken = destinationToken

	realizedLpFeePct, err := enricher.RealizedLpFeePct(*d)
	if err != nil {
		return nil, err
	}
	d.RealizedLpFeePct = realizedLpFeePct
	return d, nil
}

func parseFill(chainID uint64, e events.FilledRelay) (*FillWithBlock, error) {
	if !e.DestinationChainId.IsUint64() || e.DestinationChainId.Uint64() != chainID {
		return nil, fmt.Errorf("fill of deposit %d has destination chain %s on chain %d", e.DepositId, e.DestinationChainId, chainID)
	}
	if !e.OriginChainId.IsUint64() || !e.RepaymentChainId.IsUint64() {
		return nil, fmt.Errorf("fill of deposit %d has invalid chain ids", e.DepositId)
	}

	return &FillWithBlock{
		Fill: Fill{
			Amount:               e.Amount,
			TotalFilledAmount:    e.TotalFilledAmount,
			FillAmount:           e.FillAmount,
			RepaymentChainId:     e.RepaymentChainId.Uint64(),
			OriginChainId:        e.OriginChainId.Uint64(),
			DestinationChainId:   chainID,
			RelayerFeePct:        new(big.Int).SetUint64(e.RelayerFeePct),
			AppliedRelayerFeePct: new(big.Int).SetUint64(e.AppliedRelayerFeePct),
			RealizedLpFeePct:     new(big.Int).SetUint64(e.RealizedLpFeePct),
			DepositId:            e.DepositId,
			DestinationToken:     e.DestinationToken,
			Relayer:              e.Relayer,
			Depositor:            e.Depositor,
			Recipient:            e.Recipient,
			IsSlowRelay:          e.IsSlowRelay,
		},
		BlockNumber:      e.BlockNumber,
		TransactionIndex: e.TransactionIndex,
		LogIndex:         e.LogIndex,
	}, nil
}

// matchesDeposit reports whether the fill relays the deposit with the parameters
// the deposit was made with. The realized LP fee is not compared: it is quoted by
// the relayer from the hub pool rate model at the deposit's quote time and only
// the fill carries it.
func matchesDeposit(fill Fill, deposit Deposit) bool {
	return fill.DepositId == deposit.DepositId &&
		fill.OriginChainId == deposit.OriginChainId &&
		fill.DestinationChainId == deposit.DestinationChainId &&
		fill.Amount.Cmp(deposit.Amount) == 0 &&
		fill.RelayerFeePct.Cmp(deposit.RelayerFeePct) == 0 &&
		fill.RealizedLpFeePct.Sign() >= 0 &&
		fill.RealizedLpFeePct.Cmp(FIXED_POINT_ONE) < 0 &&
		fill.DestinationToken == deposit.DestinationToken &&
		fill.Depositor == deposit.Depositor &&
		fill.Recipient == deposit.Recipient
}
