package across

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/events"
	"github.com/sprintertech/across-dataworker/config"
)

const (
	ROUTE_TTL = time.Hour
)

type RouteFetcher interface {
	PoolRebalanceRoute(destinationChainId uint64, l1Token common.Address) (common.Address, error)
}

type RootBundleFetcher interface {
	LatestBlock() (*big.Int, error)
	FetchProposedRootBundles(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]events.ProposeRootBundle, error)
}

// RootBundle is a root bundle proposed to the hub pool.
type RootBundle struct {
	PoolRebalanceRoot            common.Hash
	RelayerRefundRoot            common.Hash
	SlowRelayRoot                common.Hash
	BundleEvaluationBlockNumbers []uint64
	PoolRebalanceLeafCount       uint8
	ChallengePeriodEndTimestamp  uint32
	Proposer                     common.Address
	BlockNumber                  uint64
}

// EndBlockForChain returns the last block of the chain covered by the bundle.
// chainIdList is the chain order of the bundle evaluation block numbers.
func (b RootBundle) EndBlockForChain(chainId uint64, chainIdList []uint64) (uint64, bool) {
	i := slices.Index(chainIdList, chainId)
	if i < 0 || i >= len(b.BundleEvaluationBlockNumbers) {
		return 0, false
	}
	return b.BundleEvaluationBlockNumbers[i], true
}

type routeKey struct {
	chainID uint64
	l1Token common.Address
}

// HubPoolClient maps tokens between the hub chain and the spoke chains through
// the hub pool rebalance routes and tracks the root bundles proposed to it.
type HubPoolClient struct {
	hubChainID      uint64
	hubPool         common.Address
	tokens          config.TokenStore
	routes          RouteFetcher
	fetcher         RootBundleFetcher
	routeCache      *ttlcache.Cache[routeKey, common.Address]
	blockRangeLimit uint64
	log             zerolog.Logger

	lock        sync.RWMutex
	updated     bool
	nextBlock   uint64
	rootBundles []RootBundle
}

func NewHubPoolClient(
	hubChainID uint64,
	hubPool common.Address,
	deploymentBlock uint64,
	blockRangeLimit uint64,
	tokens config.TokenStore,
	routes RouteFetcher,
	fetcher RootBundleFetcher,
) *HubPoolClient {
	return &HubPoolClient{
		hubChainID: hubChainID,
		hubPool:    hubPool,
		tokens:     tokens,
		routes:     routes,
		fetcher:    fetcher,
		routeCache: ttlcache.New(
			ttlcache.WithTTL[routeKey, common.Address](ROUTE_TTL),
		),
		blockRangeLimit: max(blockRangeLimit, 1),
		log:             log.With().Uint64("chainID", hubChainID).Str("hubPool", hubPool.Hex()).Logger(),
		nextBlock:       deploymentBlock,
		rootBundles:     make([]RootBundle, 0),
	}
}

// L2TokenForL1Token returns the token the hub pool routes l1Token to on the chain.
func (c *HubPoolClient) L2TokenForL1Token(chainId uint64, l1Token common.Address) (common.Address, error) {
	if chainId == c.hubChainID {
		if _, _, err := c.tokens.ConfigByAddress(c.hubChainID, l1Token); err != nil {
			return common.Address{}, err
		}
		return l1Token, nil
	}

	key := routeKey{chainID: chainId, l1Token: l1Token}
	if item := c.routeCache.Get(key); item != nil {
		return item.Value(), nil
	}

	l2Token, err := c.routes.PoolRebalanceRoute(chainId, l1Token)
	if err != nil {
		return common.Address{}, err
	}
	c.routeCache.Set(key, l2Token, ttlcache.DefaultTTL)
	return l2Token, nil
}

// L1TokenCounterpart returns the configured l1 token routed to l2Token on the chain.
func (c *HubPoolClient) L1TokenCounterpart(chainId uint64, l2Token common.Address) (common.Address, error) {
	for _, l1Token := range c.tokens.Addresses(c.hubChainID) {
		token, err := c.L2TokenForL1Token(chainId, l1Token)
		if err != nil {
			c.log.Trace().Err(err).Msgf("No route for %s to chain %d", l1Token.Hex(), chainId)
			continue
		}
		if token == l2Token {
			return l1Token, nil
		}
	}
	return common.Address{}, fmt.Errorf("no l1 token for %s on chain %d", l2Token.Hex(), chainId)
}

func (c *HubPoolClient) L1TokenForDeposit(deposit Deposit) (common.Address, error) {
	return c.L1TokenCounterpart(deposit.OriginChainId, deposit.OriginToken)
}

func (c *HubPoolClient) DestinationTokenForDeposit(deposit Deposit) (common.Address, error) {
	l1Token, err := c.L1TokenForDeposit(deposit)
	if err != nil {
		return common.Address{}, err
	}
	return c.L2TokenForL1Token(deposit.DestinationChainId, l1Token)
}

// RealizedLpFeePct returns the LP fee configured for the l1 token of the deposit. It
// is the fee of a deposit until a fill quotes the realized one.
func (c *HubPoolClient) RealizedLpFeePct(deposit Deposit) (*big.Int, error) {
	l1Token, err := c.L1TokenForDeposit(deposit)
	if err != nil {
		return nil, err
	}
	_, tokenConfig, err := c.tokens.ConfigByAddress(c.hubChainID, l1Token)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(tokenConfig.LpFeePct), nil
}

// Update fetches the root bundles proposed since the previous update.
func (c *HubPoolClient) Update(ctx context.Context) error {
	latest, err := c.fetcher.LatestBlock()
	if err != nil {
		c.setUpdated(false)
		return err
	}

	c.lock.RLock()
	from := c.nextBlock
	c.lock.RUnlock()
	to := latest.Uint64()
	if from > to {
		c.setUpdated(true)
		return nil
	}

	bundles := make([]RootBundle, 0)
	for start := from; start <= to; start += c.blockRangeLimit {
		end := min(start+c.blockRangeLimit-1, to)
		proposals, err := c.fetcher.FetchProposedRootBundles(
			ctx, c.hubPool, new(big.Int).SetUint64(start), new(big.Int).SetUint64(end))
		if err != nil {
			c.setUpdated(false)
			return fmt.Errorf("failed fetching root bundles of blocks %d-%d: %w", start, end, err)
		}

		for _, p := range proposals {
			bundle, err := parseRootBundle(p)
			if err != nil {
				c.setUpdated(false)
				return err
			}
			bundles = append(bundles, bundle)
		}
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	c.rootBundles = append(c.rootBundles, bundles...)
	sort.SliceStable(c.rootBundles, func(i, j int) bool {
		return c.rootBundles[i].BlockNumber < c.rootBundles[j].BlockNumber
	})
	c.nextBlock = to + 1
	c.updated = true

	c.log.Debug().Uint64("from", from).Uint64("to", to).Int("rootBundles", len(bundles)).Msg("Updated hub pool client")
	return nil
}

func parseRootBundle(p events.ProposeRootBundle) (RootBundle, error) {
	blockNumbers := make([]uint64, len(p.BundleEvaluationBlockNumbers))
	for i, n := range p.BundleEvaluationBlockNumbers {
		if !n.IsUint64() {
			return RootBundle{}, fmt.Errorf("invalid bundle evaluation block number %s", n)
		}
		blockNumbers[i] = n.Uint64()
	}

	return RootBundle{
		PoolRebalanceRoot:            p.PoolRebalanceRoot,
		RelayerRefundRoot:            p.RelayerRefundRoot,
		SlowRelayRoot:                p.SlowRelayRoot,
		BundleEvaluationBlockNumbers: blockNumbers,
		PoolRebalanceLeafCount:       p.PoolRebalanceLeafCount,
		ChallengePeriodEndTimestamp:  p.ChallengePeriodEndTimestamp,
		Proposer:                     p.Proposer,
		BlockNumber:                  p.BlockNumber,
	}, nil
}

func (c *HubPoolClient) setUpdated(updated bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.updated = updated
}

func (c *HubPoolClient) IsUpdated() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.updated
}

// LatestRootBundle returns the most recently proposed root bundle.
func (c *HubPoolClient) LatestRootBundle() (RootBundle, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if len(c.rootBundles) == 0 {
		return RootBundle{}, false
	}
	return c.rootBundles[len(c.rootBundles)-1], true
}

// RootBundleEvalBlockNumberContainingBlock returns the smallest end block for the
// chain among the proposed root bundles that is not before block.
func (c *HubPoolClient) RootBundleEvalBlockNumberContainingBlock(block uint64, chainId uint64, chainIdList []uint64) (uint64, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	found := false
	var endBlock uint64
	for _, bundle := range c.rootBundles {
		end, ok := bundle.EndBlockForChain(chainId, chainIdList)
		if !ok || end < block {
			continue
		}
		if !found || end < endBlock {
			endBlock = end
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("no root bundle containing block %d of chain %d", block, chainId)
	}
	return endBlock, nil
}
