package dataworker

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

// BlockRange is an inclusive block range of one chain.
type BlockRange struct {
	Start uint64
	End   uint64
}

func (r BlockRange) Contains(block uint64) bool {
	return block >= r.Start && block <= r.End
}

// UnboundedRanges returns ranges that include every block of the given chains. Used when
// the spoke pool clients only hold the events of the bundle.
func UnboundedRanges(chainIds []uint64) map[uint64]BlockRange {
	ranges := make(map[uint64]BlockRange, len(chainIds))
	for _, id := range chainIds {
		ranges[id] = BlockRange{Start: 0, End: math.MaxUint64}
	}
	return ranges
}

type UnfilledDeposit struct {
	Deposit             across.Deposit
	UnfilledAmount      *big.Int
	HasFirstPartialFill bool
}

// RefundKey identifies a (chain, l2 token) refund group.
type RefundKey struct {
	ChainId uint64
	L2Token common.Address
}

func (k RefundKey) String() string {
	return fmt.Sprintf("%d/%s", k.ChainId, k.L2Token.Hex())
}

func (k RefundKey) Less(other RefundKey) bool {
	if k.ChainId != other.ChainId {
		return k.ChainId < other.ChainId
	}
	return bytes.Compare(k.L2Token[:], other.L2Token[:]) < 0
}

// RefundGroup holds the fills reimbursed with one token on one chain.
type RefundGroup struct {
	ChainId           uint64
	L2Token           common.Address
	Fills             []across.FillWithBlock
	Refunds           map[common.Address]*big.Int
	TotalRefundAmount *big.Int
	RealizedLpFees    *big.Int
}

func (g *RefundGroup) addRefund(relayer common.Address, amount *big.Int) {
	prev, ok := g.Refunds[relayer]
	if !ok {
		prev = new(big.Int)
		g.Refunds[relayer] = prev
	}
	prev.Add(prev, amount)
}

// FillsToRefund accumulates refund groups keyed by (repayment chain, l2 token). A new
// one is allocated for every bundle.
type FillsToRefund struct {
	groups map[RefundKey]*RefundGroup
}

func NewFillsToRefund() *FillsToRefund {
	return &FillsToRefund{
		groups: make(map[RefundKey]*RefundGroup),
	}
}

func (f *FillsToRefund) group(chainId uint64, l2Token common.Address) *RefundGroup {
	key := RefundKey{ChainId: chainId, L2Token: l2Token}
	g, ok := f.groups[key]
	if !ok {
		g = &RefundGroup{
			ChainId:           chainId,
			L2Token:           l2Token,
			Fills:             make([]across.FillWithBlock, 0),
			Refunds:           make(map[common.Address]*big.Int),
			TotalRefundAmount: new(big.Int),
			RealizedLpFees:    new(big.Int),
		}
		f.groups[key] = g
	}
	return g
}

func (f *FillsToRefund) Get(chainId uint64, l2Token common.Address) (*RefundGroup, bool) {
	g, ok := f.groups[RefundKey{ChainId: chainId, L2Token: l2Token}]
	return g, ok
}

// Groups returns the refund groups sorted by chain id and token address.
func (f *FillsToRefund) Groups() []*RefundGroup {
	groups := make([]*RefundGroup, 0, len(f.groups))
	for _, g := range f.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return RefundKey{groups[i].ChainId, groups[i].L2Token}.Less(RefundKey{groups[j].ChainId, groups[j].L2Token})
	})
	return groups
}

func (f *FillsToRefund) Len() int {
	return len(f.groups)
}

// BalanceKey identifies a (chain, l1 token) running balance.
type BalanceKey struct {
	ChainId uint64
	L1Token common.Address
}

func (k BalanceKey) Less(other BalanceKey) bool {
	if k.ChainId != other.ChainId {
		return k.ChainId < other.ChainId
	}
	return bytes.Compare(k.L1Token[:], other.L1Token[:]) < 0
}

// RunningBalances holds the signed net amount every spoke pool has to receive
// (positive) or return (negative) per l1 token for one bundle, together with the LP
// fees realized on it. Both maps always share the same keys.
type RunningBalances struct {
	balances map[BalanceKey]*big.Int
	lpFees   map[BalanceKey]*big.Int
}

func NewRunningBalances() *RunningBalances {
	return &RunningBalances{
		balances: make(map[BalanceKey]*big.Int),
		lpFees:   make(map[BalanceKey]*big.Int),
	}
}

func (r *RunningBalances) ensure(key BalanceKey) {
	if _, ok := r.balances[key]; !ok {
		r.balances[key] = new(big.Int)
		r.lpFees[key] = new(big.Int)
	}
}

func (r *RunningBalances) addBalance(chainId uint64, l1Token common.Address, amount *big.Int) {
	key := BalanceKey{ChainId: chainId, L1Token: l1Token}
	r.ensure(key)
	r.balances[key].Add(r.balances[key], amount)
}

func (r *RunningBalances) addLpFee(chainId uint64, l1Token common.Address, amount *big.Int) {
	key := BalanceKey{ChainId: chainId, L1Token: l1Token}
	r.ensure(key)
	r.lpFees[key].Add(r.lpFees[key], amount)
}

// Balance returns a copy of the running balance, zero if absent.
func (r *RunningBalances) Balance(chainId uint64, l1Token common.Address) *big.Int {
	b, ok := r.balances[BalanceKey{ChainId: chainId, L1Token: l1Token}]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(b)
}

// LpFee returns a copy of the realized LP fees, zero if absent.
func (r *RunningBalances) LpFee(chainId uint64, l1Token common.Address) *big.Int {
	f, ok := r.lpFees[BalanceKey{ChainId: chainId, L1Token: l1Token}]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(f)
}

// Keys returns every (chain, l1 token) sorted by chain id and token address.
func (r *RunningBalances) Keys() []BalanceKey {
	keys := make([]BalanceKey, 0, len(r.balances))
	for k := range r.balances {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}

func (r *RunningBalances) Len() int {
	return len(r.balances)
}

// BundleData is the reconciled view of the events of one bundle.
type BundleData struct {
	UnfilledDeposits []UnfilledDeposit
	FillsToRefund    *FillsToRefund
	// AllValidFills holds every fill matched to a deposit, including the ones outside
	// of the bundle block ranges, ordered by destination chain and position on chain.
	AllValidFills []across.FillWithBlock
	// Deposits holds the deposits inside the bundle block ranges.
	Deposits    []across.Deposit
	Warnings    []UnmatchedFillWarning
	BlockRanges map[uint64]BlockRange
}
