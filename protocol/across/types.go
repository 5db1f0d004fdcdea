package across

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FIXED_POINT_ONE is the 1e18 scale used by every fee percentage (1e18 == 100%).
var FIXED_POINT_ONE = big.NewInt(1_000_000_000_000_000_000)

// Deposit is a FundsDeposited event observed on the origin chain, enriched with the
// destination token and the realized LP fee the hub pool quoted for it.
type Deposit struct {
	DepositId          uint32
	Depositor          common.Address
	Recipient          common.Address
	OriginToken        common.Address
	DestinationToken   common.Address
	Amount             *big.Int
	OriginChainId      uint64
	DestinationChainId uint64
	RelayerFeePct      *big.Int
	RealizedLpFeePct   *big.Int
	QuoteTimestamp     uint32
	BlockNumber        uint64
}

// Key returns the (originChainId, depositId) pair that uniquely identifies the deposit.
func (d Deposit) Key() DepositKey {
	return DepositKey{OriginChainId: d.OriginChainId, DepositId: d.DepositId}
}

// Fill is a FilledRelay event observed on the destination chain.
type Fill struct {
	Amount               *big.Int
	TotalFilledAmount    *big.Int
	FillAmount           *big.Int
	RepaymentChainId     uint64
	OriginChainId        uint64
	DestinationChainId   uint64
	RelayerFeePct        *big.Int
	AppliedRelayerFeePct *big.Int
	RealizedLpFeePct     *big.Int
	DepositId            uint32
	DestinationToken     common.Address
	Relayer              common.Address
	Depositor            common.Address
	Recipient            common.Address
	IsSlowRelay          bool
}

func (f Fill) Key() DepositKey {
	return DepositKey{OriginChainId: f.OriginChainId, DepositId: f.DepositId}
}

// RefundChainId is the chain the fill is reimbursed on. Slow fills are always
// reimbursed on the destination chain.
func (f Fill) RefundChainId() uint64 {
	if f.IsSlowRelay {
		return f.DestinationChainId
	}
	return f.RepaymentChainId
}

// FilledSameDeposit reports whether both fills relay the same deposit.
func (f Fill) FilledSameDeposit(other Fill) bool {
	return f.DepositId == other.DepositId &&
		f.OriginChainId == other.OriginChainId &&
		f.DestinationChainId == other.DestinationChainId &&
		f.Amount.Cmp(other.Amount) == 0 &&
		f.RelayerFeePct.Cmp(other.RelayerFeePct) == 0 &&
		f.Recipient == other.Recipient &&
		f.Depositor == other.Depositor
}

// FillWithBlock is a fill together with its position on the destination chain.
type FillWithBlock struct {
	Fill
	BlockNumber      uint64
	TransactionIndex uint
	LogIndex         uint
}

// Before orders fills by their position on chain.
func (f FillWithBlock) Before(other FillWithBlock) bool {
	if f.BlockNumber != other.BlockNumber {
		return f.BlockNumber < other.BlockNumber
	}
	if f.TransactionIndex != other.TransactionIndex {
		return f.TransactionIndex < other.TransactionIndex
	}
	return f.LogIndex < other.LogIndex
}

// RelayData is the slow relay leaf: everything the destination spoke pool needs to
// complete a deposit with its own funds.
type RelayData struct {
	Depositor          common.Address
	Recipient          common.Address
	DestinationToken   common.Address
	Amount             *big.Int
	OriginChainId      uint64
	DestinationChainId uint64
	RealizedLpFeePct   *big.Int
	RelayerFeePct      *big.Int
	DepositId          uint32
}

// NewRelayData builds the slow relay payload of a deposit.
func NewRelayData(d Deposit) RelayData {
	return RelayData{
		Depositor:          d.Depositor,
		Recipient:          d.Recipient,
		DestinationToken:   d.DestinationToken,
		Amount:             new(big.Int).Set(d.Amount),
		OriginChainId:      d.OriginChainId,
		DestinationChainId: d.DestinationChainId,
		RealizedLpFeePct:   new(big.Int).Set(d.RealizedLpFeePct),
		RelayerFeePct:      new(big.Int).Set(d.RelayerFeePct),
		DepositId:          d.DepositId,
	}
}

type DepositKey struct {
	OriginChainId uint64
	DepositId     uint32
}

func (k DepositKey) String() string {
	return fmt.Sprintf("%d-%d", k.OriginChainId, k.DepositId)
}

// Less orders keys by origin chain, then deposit id.
func (k DepositKey) Less(other DepositKey) bool {
	if k.OriginChainId != other.OriginChainId {
		return k.OriginChainId < other.OriginChainId
	}
	return k.DepositId < other.DepositId
}
