package across

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/events"
)

type SpokePoolEventFetcher interface {
	LatestBlock() (*big.Int, error)
	FetchFundsDeposited(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]events.FundsDeposited, error)
	FetchFilledRelays(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]events.FilledRelay, error)
}

// SpokePoolClient keeps the deposits and fills of one spoke pool in memory. Every
// Update fetches the events emitted since the previous one.
type SpokePoolClient struct {
	chainID         uint64
	spokePool       common.Address
	fetcher         SpokePoolEventFetcher
	enricher        DepositEnricher
	blockRangeLimit uint64
	log             zerolog.Logger

	lock                sync.RWMutex
	updated             bool
	nextBlock           uint64
	latestBlockSearched uint64
	deposits            map[uint32]Deposit
	depositsByChain     map[uint64][]Deposit
	fillsByChain        map[uint64][]FillWithBlock
}

func NewSpokePoolClient(
	chainID uint64,
	spokePool common.Address,
	deploymentBlock uint64,
	blockRangeLimit uint64,
	fetcher SpokePoolEventFetcher,
	enricher DepositEnricher,
) *SpokePoolClient {
	return &SpokePoolClient{
		chainID:         chainID,
		spokePool:       spokePool,
		fetcher:         fetcher,
		enricher:        enricher,
		blockRangeLimit: max(blockRangeLimit, 1),
		log:             log.With().Uint64("chainID", chainID).Str("spokePool", spokePool.Hex()).Logger(),
		nextBlock:       deploymentBlock,
		deposits:        make(map[uint32]Deposit),
		depositsByChain: make(map[uint64][]Deposit),
		fillsByChain:    make(map[uint64][]FillWithBlock),
	}
}

func (c *SpokePoolClient) ChainID() uint64 {
	return c.chainID
}

// Update fetches the events up to the latest block. A failed update marks the
// client as not updated until the next successful one.
func (c *SpokePoolClient) Update(ctx context.Context) error {
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

	deposits := make([]Deposit, 0)
	fills := make([]FillWithBlock, 0)
	for start := from; start <= to; start += c.blockRangeLimit {
		end := min(start+c.blockRangeLimit-1, to)
		d, f, err := c.fetchRange(ctx, start, end)
		if err != nil {
			c.setUpdated(false)
			return fmt.Errorf("failed fetching events of blocks %d-%d on chain %d: %w", start, end, c.chainID, err)
		}
		deposits = append(deposits, d...)
		fills = append(fills, f...)
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	for _, d := range deposits {
		c.deposits[d.DepositId] = d
		c.depositsByChain[d.DestinationChainId] = append(c.depositsByChain[d.DestinationChainId], d)
	}
	for _, f := range fills {
		c.fillsByChain[f.OriginChainId] = append(c.fillsByChain[f.OriginChainId], f)
	}
	c.nextBlock = to + 1
	c.latestBlockSearched = to
	c.updated = true

	c.log.Debug().
		Uint64("from", from).
		Uint64("to", to).
		Int("deposits", len(deposits)).
		Int("fills", len(fills)).
		Msg("Updated spoke pool client")
	return nil
}

func (c *SpokePoolClient) fetchRange(ctx context.Context, start, end uint64) ([]Deposit, []FillWithBlock, error) {
	startBlock := new(big.Int).SetUint64(start)
	endBlock := new(big.Int).SetUint64(end)

	depositEvents, err := c.fetcher.FetchFundsDeposited(ctx, c.spokePool, startBlock, endBlock)
	if err != nil {
		return nil, nil, err
	}
	deposits := make([]Deposit, 0, len(depositEvents))
	for _, e := range depositEvents {
		d, err := parseDeposit(c.chainID, e, c.enricher)
		if err != nil {
			return nil, nil, err
		}
		deposits = append(deposits, *d)
	}

	fillEvents, err := c.fetcher.FetchFilledRelays(ctx, c.spokePool, startBlock, endBlock)
	if err != nil {
		return nil, nil, err
	}
	fills := make([]FillWithBlock, 0, len(fillEvents))
	for _, e := range fillEvents {
		f, err := parseFill(c.chainID, e)
		if err != nil {
			return nil, nil, err
		}
		fills = append(fills, *f)
	}
	return deposits, fills, nil
}

func (c *SpokePoolClient) setUpdated(updated bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.updated = updated
}

func (c *SpokePoolClient) IsUpdated() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.updated
}

// LatestBlockSearched is the last block of the latest successful update.
func (c *SpokePoolClient) LatestBlockSearched() uint64 {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.latestBlockSearched
}

func (c *SpokePoolClient) DepositsForDestinationChain(destinationChainId uint64) []Deposit {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return append([]Deposit(nil), c.depositsByChain[destinationChainId]...)
}

func (c *SpokePoolClient) FillsWithBlockForOriginChain(originChainId uint64) []FillWithBlock {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return append([]FillWithBlock(nil), c.fillsByChain[originChainId]...)
}

// DepositForFill returns the deposit the fill relays, or nil if the fill does not
// match any deposit made on this chain. The returned deposit carries the realized
// LP fee of the fill.
func (c *SpokePoolClient) DepositForFill(fill Fill) *Deposit {
	if fill.OriginChainId != c.chainID {
		return nil
	}

	c.lock.RLock()
	defer c.lock.RUnlock()
	deposit, ok := c.deposits[fill.DepositId]
	if !ok || !matchesDeposit(fill, deposit) {
		return nil
	}
	deposit.RealizedLpFeePct = new(big.Int).Set(fill.RealizedLpFeePct)
	return &deposit
}

type Updater interface {
	Update(ctx context.Context) error
}

// UpdateAll updates the clients concurrently and returns the first error.
func UpdateAll[T Updater](ctx context.Context, clients []T) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for _, client := range clients {
		p.Go(func(ctx context.Context) error {
			return client.Update(ctx)
		})
	}
	return p.Wait()
}
