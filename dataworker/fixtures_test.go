package dataworker_test

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

var (
	hubChainId      uint64 = 1
	optimismChainId uint64 = 10
	polygonChainId  uint64 = 137

	l1Token       = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	optimismToken = common.HexToAddress("0x4200000000000000000000000000000000000006")
	polygonToken  = common.HexToAddress("0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619")

	depositor = common.HexToAddress("0x1000000000000000000000000000000000000001")
	recipient = common.HexToAddress("0x2000000000000000000000000000000000000002")
	relayerA  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	relayerB  = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	relayerC  = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func tokenOn(chainId uint64) common.Address {
	switch chainId {
	case hubChainId:
		return l1Token
	case optimismChainId:
		return optimismToken
	case polygonChainId:
		return polygonToken
	default:
		return common.Address{}
	}
}

func newDeposit(id uint32, origin, destination uint64, amount int64, block uint64) across.Deposit {
	return across.Deposit{
		DepositId:          id,
		Depositor:          depositor,
		Recipient:          recipient,
		OriginToken:        tokenOn(origin),
		DestinationToken:   tokenOn(destination),
		Amount:             big.NewInt(amount),
		OriginChainId:      origin,
		DestinationChainId: destination,
		RelayerFeePct:      big.NewInt(1e15),
		RealizedLpFeePct:   big.NewInt(0),
		QuoteTimestamp:     1700000000,
		BlockNumber:        block,
	}
}

func newFill(
	d across.Deposit,
	fillAmount int64,
	totalFilledAmount int64,
	relayer common.Address,
	repaymentChainId uint64,
	block uint64,
) across.FillWithBlock {
	return across.FillWithBlock{
		Fill: across.Fill{
			Amount:               new(big.Int).Set(d.Amount),
			TotalFilledAmount:    big.NewInt(totalFilledAmount),
			FillAmount:           big.NewInt(fillAmount),
			RepaymentChainId:     repaymentChainId,
			OriginChainId:        d.OriginChainId,
			DestinationChainId:   d.DestinationChainId,
			RelayerFeePct:        new(big.Int).Set(d.RelayerFeePct),
			AppliedRelayerFeePct: new(big.Int).Set(d.RelayerFeePct),
			RealizedLpFeePct:     new(big.Int).Set(d.RealizedLpFeePct),
			DepositId:            d.DepositId,
			DestinationToken:     d.DestinationToken,
			Relayer:              relayer,
			Depositor:            d.Depositor,
			Recipient:            d.Recipient,
		},
		BlockNumber: block,
	}
}

func newSlowFill(d across.Deposit, fillAmount int64, totalFilledAmount int64, block uint64) across.FillWithBlock {
	fill := newFill(d, fillAmount, totalFilledAmount, common.Address{}, d.DestinationChainId, block)
	fill.AppliedRelayerFeePct = big.NewInt(0)
	fill.IsSlowRelay = true
	return fill
}

// testSpokeClient serves a fixed set of events of one chain.
type testSpokeClient struct {
	updated  bool
	deposits []across.Deposit
	fills    []across.FillWithBlock
}

func (c *testSpokeClient) IsUpdated() bool {
	return c.updated
}

func (c *testSpokeClient) DepositsForDestinationChain(destinationChainId uint64) []across.Deposit {
	deposits := make([]across.Deposit, 0)
	for _, d := range c.deposits {
		if d.DestinationChainId == destinationChainId {
			deposits = append(deposits, d)
		}
	}
	return deposits
}

func (c *testSpokeClient) FillsWithBlockForOriginChain(originChainId uint64) []across.FillWithBlock {
	fills := make([]across.FillWithBlock, 0)
	for _, f := range c.fills {
		if f.OriginChainId == originChainId {
			fills = append(fills, f)
		}
	}
	return fills
}

func (c *testSpokeClient) DepositForFill(fill across.Fill) *across.Deposit {
	for _, d := range c.deposits {
		if d.Key() == fill.Key() &&
			d.DestinationChainId == fill.DestinationChainId &&
			d.Amount.Cmp(fill.Amount) == 0 {
			deposit := d
			return &deposit
		}
	}
	return nil
}

// testRegistry maps the test token of every chain to the l1 token. bundleEndBlocks
// holds, per chain, the ascending end blocks of previously proposed bundles.
type testRegistry struct {
	bundleEndBlocks map[uint64][]uint64
}

func (r *testRegistry) L1TokenCounterpart(chainId uint64, l2Token common.Address) (common.Address, error) {
	if l2Token != tokenOn(chainId) || l2Token == (common.Address{}) {
		return common.Address{}, fmt.Errorf("unknown token %s on chain %d", l2Token.Hex(), chainId)
	}
	return l1Token, nil
}

func (r *testRegistry) L1TokenForDeposit(deposit across.Deposit) (common.Address, error) {
	return r.L1TokenCounterpart(deposit.OriginChainId, deposit.OriginToken)
}

func (r *testRegistry) L2TokenForL1Token(chainId uint64, token common.Address) (common.Address, error) {
	if token != l1Token || tokenOn(chainId) == (common.Address{}) {
		return common.Address{}, fmt.Errorf("no route for %s to chain %d", token.Hex(), chainId)
	}
	return tokenOn(chainId), nil
}

func (r *testRegistry) RootBundleEvalBlockNumberContainingBlock(block uint64, chainId uint64, chainIdList []uint64) (uint64, error) {
	for _, end := range r.bundleEndBlocks[chainId] {
		if end >= block {
			return end, nil
		}
	}
	return 0, fmt.Errorf("no bundle containing block %d on chain %d", block, chainId)
}
