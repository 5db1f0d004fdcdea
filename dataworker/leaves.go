package dataworker

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

var (
	relayDataArgs = mustTupleArgs([]abi.ArgumentMarshaling{
		{Name: "depositor", Type: "address"},
		{Name: "recipient", Type: "address"},
		{Name: "destinationToken", Type: "address"},
		{Name: "amount", Type: "uint256"},
		{Name: "originChainId", Type: "uint256"},
		{Name: "destinationChainId", Type: "uint256"},
		{Name: "realizedLpFeePct", Type: "uint64"},
		{Name: "relayerFeePct", Type: "uint64"},
		{Name: "depositId", Type: "uint32"},
	})
	relayerRefundLeafArgs = mustTupleArgs([]abi.ArgumentMarshaling{
		{Name: "amountToReturn", Type: "uint256"},
		{Name: "chainId", Type: "uint256"},
		{Name: "refundAmounts", Type: "uint256[]"},
		{Name: "leafId", Type: "uint32"},
		{Name: "l2TokenAddress", Type: "address"},
		{Name: "refundAddresses", Type: "address[]"},
	})
	poolRebalanceLeafArgs = mustTupleArgs([]abi.ArgumentMarshaling{
		{Name: "chainId", Type: "uint256"},
		{Name: "bundleLpFees", Type: "uint256[]"},
		{Name: "netSendAmounts", Type: "int256[]"},
		{Name: "runningBalances", Type: "int256[]"},
		{Name: "groupIndex", Type: "uint8"},
		{Name: "leafId", Type: "uint8"},
		{Name: "l1Tokens", Type: "address[]"},
	})

	maxInt256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

func mustTupleArgs(components []abi.ArgumentMarshaling) abi.Arguments {
	t, err := abi.NewType("tuple", "", components)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: t}}
}

// RelayerRefundLeaf is the canonical, hashed relayer refund leaf.
type RelayerRefundLeaf struct {
	LeafId          uint32
	ChainId         uint64
	L2TokenAddress  common.Address
	AmountToReturn  *big.Int
	RefundAddresses []common.Address
	RefundAmounts   []*big.Int
}

// Validate checks the leaf before hashing.
func (l RelayerRefundLeaf) Validate(index int) error {
	if len(l.RefundAddresses) != len(l.RefundAmounts) {
		return &MalformedLeafError{
			LeafIndex: index,
			Reason:    fmt.Sprintf("%d refund addresses for %d refund amounts", len(l.RefundAddresses), len(l.RefundAmounts)),
		}
	}
	if err := checkUint256(l.AmountToReturn); err != nil {
		return &MalformedLeafError{LeafIndex: index, Reason: fmt.Sprintf("amountToReturn %s", err)}
	}
	for i, amount := range l.RefundAmounts {
		if err := checkUint256(amount); err != nil {
			return &MalformedLeafError{LeafIndex: index, Reason: fmt.Sprintf("refund amount %d %s", i, err)}
		}
	}
	return nil
}

// PoolRebalanceLeaf is the canonical, hashed pool rebalance leaf of one chain.
// RunningBalances is either as long as the other arrays or twice as long, the
// second half being a second accounting bucket.
type PoolRebalanceLeaf struct {
	ChainId         uint64
	BundleLpFees    []*big.Int
	NetSendAmounts  []*big.Int
	RunningBalances []*big.Int
	GroupIndex      uint8
	LeafId          uint8
	L1Tokens        []common.Address
}

func (l PoolRebalanceLeaf) Validate(index int) error {
	n := len(l.BundleLpFees)
	if len(l.L1Tokens) != n || len(l.NetSendAmounts) != n {
		return &MalformedLeafError{
			LeafIndex: index,
			Reason: fmt.Sprintf(
				"%d l1 tokens, %d bundle lp fees and %d net send amounts",
				len(l.L1Tokens), n, len(l.NetSendAmounts)),
		}
	}
	if len(l.RunningBalances) != n && len(l.RunningBalances) != 2*n {
		return &MalformedLeafError{
			LeafIndex: index,
			Reason:    fmt.Sprintf("%d running balances for %d bundle lp fees", len(l.RunningBalances), n),
		}
	}
	for i, fee := range l.BundleLpFees {
		if err := checkUint256(fee); err != nil {
			return &MalformedLeafError{LeafIndex: index, Reason: fmt.Sprintf("bundle lp fee %d %s", i, err)}
		}
	}
	for i, amount := range l.NetSendAmounts {
		if err := checkInt256(amount); err != nil {
			return &MalformedLeafError{LeafIndex: index, Reason: fmt.Sprintf("net send amount %d %s", i, err)}
		}
	}
	for i, balance := range l.RunningBalances {
		if err := checkInt256(balance); err != nil {
			return &MalformedLeafError{LeafIndex: index, Reason: fmt.Sprintf("running balance %d %s", i, err)}
		}
	}
	return nil
}

// HashSlowRelayLeaf returns keccak256(abi.encode(RelayData)).
func HashSlowRelayLeaf(leaf across.RelayData) (common.Hash, error) {
	if err := checkUint256(leaf.Amount); err != nil {
		return common.Hash{}, fmt.Errorf("amount %w", err)
	}
	if !leaf.RealizedLpFeePct.IsUint64() || !leaf.RelayerFeePct.IsUint64() {
		return common.Hash{}, fmt.Errorf("fee percentages of deposit %d do not fit uint64", leaf.DepositId)
	}

	encoded, err := relayDataArgs.Pack(struct {
		Depositor          common.Address
		Recipient          common.Address
		DestinationToken   common.Address
		Amount             *big.Int
		OriginChainId      *big.Int
		DestinationChainId *big.Int
		RealizedLpFeePct   uint64
		RelayerFeePct      uint64
		DepositId          uint32
	}{
		Depositor:          leaf.Depositor,
		Recipient:          leaf.Recipient,
		DestinationToken:   leaf.DestinationToken,
		Amount:             leaf.Amount,
		OriginChainId:      new(big.Int).SetUint64(leaf.OriginChainId),
		DestinationChainId: new(big.Int).SetUint64(leaf.DestinationChainId),
		RealizedLpFeePct:   leaf.RealizedLpFeePct.Uint64(),
		RelayerFeePct:      leaf.RelayerFeePct.Uint64(),
		DepositId:          leaf.DepositId,
	})
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

func HashRelayerRefundLeaf(leaf RelayerRefundLeaf) (common.Hash, error) {
	if err := leaf.Validate(int(leaf.LeafId)); err != nil {
		return common.Hash{}, err
	}

	encoded, err := relayerRefundLeafArgs.Pack(struct {
		AmountToReturn  *big.Int
		ChainId         *big.Int
		RefundAmounts   []*big.Int
		LeafId          uint32
		L2TokenAddress  common.Address
		RefundAddresses []common.Address
	}{
		AmountToReturn:  leaf.AmountToReturn,
		ChainId:         new(big.Int).SetUint64(leaf.ChainId),
		RefundAmounts:   leaf.RefundAmounts,
		LeafId:          leaf.LeafId,
		L2TokenAddress:  leaf.L2TokenAddress,
		RefundAddresses: leaf.RefundAddresses,
	})
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

func HashPoolRebalanceLeaf(leaf PoolRebalanceLeaf) (common.Hash, error) {
	if err := leaf.Validate(int(leaf.LeafId)); err != nil {
		return common.Hash{}, err
	}

	encoded, err := poolRebalanceLeafArgs.Pack(struct {
		ChainId         *big.Int
		BundleLpFees    []*big.Int
		NetSendAmounts  []*big.Int
		RunningBalances []*big.Int
		GroupIndex      uint8
		LeafId          uint8
		L1Tokens        []common.Address
	}{
		ChainId:         new(big.Int).SetUint64(leaf.ChainId),
		BundleLpFees:    leaf.BundleLpFees,
		NetSendAmounts:  leaf.NetSendAmounts,
		RunningBalances: leaf.RunningBalances,
		GroupIndex:      leaf.GroupIndex,
		LeafId:          leaf.LeafId,
		L1Tokens:        leaf.L1Tokens,
	})
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

func checkUint256(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("missing")
	}
	if v.Sign() < 0 {
		return fmt.Errorf("%s is negative", v)
	}
	if _, overflow := uint256.FromBig(v); overflow {
		return fmt.Errorf("%s overflows uint256", v)
	}
	return nil
}

func checkInt256(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("missing")
	}
	if v.Cmp(maxInt256) > 0 || v.Cmp(minInt256) < 0 {
		return fmt.Errorf("%s overflows int256", v)
	}
	return nil
}
