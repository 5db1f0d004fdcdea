package dataworker

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/across-dataworker/merkle"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

// SpokePoolClient is an event source holding the already fetched events of one chain.
type SpokePoolClient interface {
	IsUpdated() bool
	DepositsForDestinationChain(destinationChainId uint64) []across.Deposit
	FillsWithBlockForOriginChain(originChainId uint64) []across.FillWithBlock
	DepositForFill(fill across.Fill) *across.Deposit
}

// TokenRegistry maps tokens between the hub chain and the spoke chains and knows the
// history of proposed root bundles.
type TokenRegistry interface {
	L1TokenCounterpart(chainId uint64, l2Token common.Address) (common.Address, error)
	L1TokenForDeposit(deposit across.Deposit) (common.Address, error)
	L2TokenForL1Token(chainId uint64, l1Token common.Address) (common.Address, error)
	RootBundleEvalBlockNumberContainingBlock(block uint64, chainId uint64, chainIdList []uint64) (uint64, error)
}

type Metrics interface {
	TrackDroppedFill(chainId uint64)
	TrackBundle(duration time.Duration, slowRelays int, relayerRefunds int, poolRebalances int)
}

// Bundle is the result of one bundle construction. A nil tree means the bundle has
// nothing to propose for it.
type Bundle struct {
	ChainIds          []uint64
	BlockRanges       map[uint64]BlockRange
	SlowRelayTree     *merkle.Tree[across.RelayData]
	RelayerRefundTree *merkle.Tree[RelayerRefundLeaf]
	PoolRebalanceTree *merkle.Tree[PoolRebalanceLeaf]
	RunningBalances   *RunningBalances
	Warnings          []UnmatchedFillWarning
}

type Roots struct {
	PoolRebalanceRoot common.Hash
	RelayerRefundRoot common.Hash
	SlowRelayRoot     common.Hash
}

// Roots returns the three roots, using the empty root sentinel for absent trees.
func (b *Bundle) Roots() Roots {
	roots := Roots{
		PoolRebalanceRoot: merkle.EmptyRoot,
		RelayerRefundRoot: merkle.EmptyRoot,
		SlowRelayRoot:     merkle.EmptyRoot,
	}
	if b.PoolRebalanceTree != nil {
		roots.PoolRebalanceRoot = b.PoolRebalanceTree.Root()
	}
	if b.RelayerRefundTree != nil {
		roots.RelayerRefundRoot = b.RelayerRefundTree.Root()
	}
	if b.SlowRelayTree != nil {
		roots.SlowRelayRoot = b.SlowRelayTree.Root()
	}
	return roots
}

// ID identifies the bundle by its roots and block ranges.
func (b *Bundle) ID() common.Hash {
	roots := b.Roots()
	data := make([]byte, 0, 3*common.HashLength+len(b.ChainIds)*24)
	data = append(data, roots.PoolRebalanceRoot[:]...)
	data = append(data, roots.RelayerRefundRoot[:]...)
	data = append(data, roots.SlowRelayRoot[:]...)
	for _, chainId := range b.ChainIds {
		r := b.BlockRanges[chainId]
		data = binary.BigEndian.AppendUint64(data, chainId)
		data = binary.BigEndian.AppendUint64(data, r.Start)
		data = binary.BigEndian.AppendUint64(data, r.End)
	}
	return crypto.Keccak256Hash(data)
}

type Dataworker struct {
	spokeClients      map[uint64]SpokePoolClient
	registry          TokenRegistry
	maxRefundsPerLeaf int
	metrics           Metrics
	log               zerolog.Logger
}

func NewDataworker(
	spokeClients map[uint64]SpokePoolClient,
	registry TokenRegistry,
	maxRefundsPerLeaf int,
	metrics Metrics,
) *Dataworker {
	return &Dataworker{
		spokeClients:      spokeClients,
		registry:          registry,
		maxRefundsPerLeaf: maxRefundsPerLeaf,
		metrics:           metrics,
		log:               log.With().Str("component", "dataworker").Logger(),
	}
}

// BuildBundle reconciles the events of the given chains and builds the slow relay,
// relayer refund and pool rebalance trees. Any error discards the whole bundle.
func (d *Dataworker) BuildBundle(chainIds []uint64, blockRanges map[uint64]BlockRange) (*Bundle, error) {
	start := time.Now()

	data, err := d.LoadData(chainIds, blockRanges)
	if err != nil {
		return nil, err
	}

	slowRelayTree, err := BuildSlowRelayRoot(data.UnfilledDeposits)
	if err != nil {
		return nil, fmt.Errorf("failed building slow relay root: %w", err)
	}

	balances, err := d.RunningBalances(data, chainIds)
	if err != nil {
		return nil, fmt.Errorf("failed computing running balances: %w", err)
	}

	poolRebalanceTree, err := BuildPoolRebalanceRoot(balances)
	if err != nil {
		return nil, fmt.Errorf("failed building pool rebalance root: %w", err)
	}

	amountsToReturn, err := AmountsToReturn(balances, d.registry)
	if err != nil {
		return nil, err
	}

	relayerRefundTree, err := BuildRelayerRefundRoot(data.FillsToRefund, d.maxRefundsPerLeaf, amountsToReturn)
	if err != nil {
		return nil, fmt.Errorf("failed building relayer refund root: %w", err)
	}

	bundle := &Bundle{
		ChainIds:          append([]uint64(nil), chainIds...),
		BlockRanges:       blockRanges,
		SlowRelayTree:     slowRelayTree,
		RelayerRefundTree: relayerRefundTree,
		PoolRebalanceTree: poolRebalanceTree,
		RunningBalances:   balances,
		Warnings:          data.Warnings,
	}

	roots := bundle.Roots()
	d.log.Info().
		Str("poolRebalanceRoot", roots.PoolRebalanceRoot.Hex()).
		Str("relayerRefundRoot", roots.RelayerRefundRoot.Hex()).
		Str("slowRelayRoot", roots.SlowRelayRoot.Hex()).
		Int("droppedFills", len(data.Warnings)).
		Msgf("Built bundle for chains %v", chainIds)

	if d.metrics != nil {
		d.metrics.TrackBundle(time.Since(start), treeLen(slowRelayTree), treeLen(relayerRefundTree), treeLen(poolRebalanceTree))
	}
	return bundle, nil
}

func treeLen[T any](t *merkle.Tree[T]) int {
	if t == nil {
		return 0
	}
	return t.Len()
}
