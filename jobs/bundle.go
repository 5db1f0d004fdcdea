package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sprintertech/across-dataworker/dataworker"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

type BundleBuilder interface {
	BuildBundle(chainIds []uint64, blockRanges map[uint64]dataworker.BlockRange) (*dataworker.Bundle, error)
}

type EventClient interface {
	ChainID() uint64
	Update(ctx context.Context) error
	IsUpdated() bool
	LatestBlockSearched() uint64
}

type RootBundleSource interface {
	Update(ctx context.Context) error
	LatestRootBundle() (across.RootBundle, bool)
}

type ClientMetrics interface {
	TrackClientUpdateFailure(chainId uint64)
}

// BundleJob periodically refreshes the event clients and builds the bundle that
// follows the latest proposed root bundle.
type BundleJob struct {
	builder      BundleBuilder
	spokeClients []EventClient
	hubPool      RootBundleSource
	metrics      ClientMetrics
	bundleChn    chan *dataworker.Bundle
}

// NewBundleJob creates a job over the spoke clients. Their order is the chain order of
// the bundle evaluation block numbers.
func NewBundleJob(
	builder BundleBuilder,
	spokeClients []EventClient,
	hubPool RootBundleSource,
	metrics ClientMetrics,
	bundleChn chan *dataworker.Bundle,
) *BundleJob {
	return &BundleJob{
		builder:      builder,
		spokeClients: spokeClients,
		hubPool:      hubPool,
		metrics:      metrics,
		bundleChn:    bundleChn,
	}
}

func (j *BundleJob) chainIds() []uint64 {
	chainIds := make([]uint64, len(j.spokeClients))
	for i, c := range j.spokeClients {
		chainIds[i] = c.ChainID()
	}
	return chainIds
}

// Build updates every client and builds the next bundle.
func (j *BundleJob) Build(ctx context.Context) (*dataworker.Bundle, error) {
	err := across.UpdateAll(ctx, j.spokeClients)
	if err != nil {
		for _, c := range j.spokeClients {
			if !c.IsUpdated() {
				j.metrics.TrackClientUpdateFailure(c.ChainID())
			}
		}
		return nil, err
	}

	err = j.hubPool.Update(ctx)
	if err != nil {
		return nil, err
	}

	chainIds := j.chainIds()
	return j.builder.BuildBundle(chainIds, j.BlockRanges(chainIds))
}

// BlockRanges starts every chain's range right after the end block of the latest
// proposed root bundle and ends it at the last block searched by its client.
func (j *BundleJob) BlockRanges(chainIds []uint64) map[uint64]dataworker.BlockRange {
	latest, proposed := j.hubPool.LatestRootBundle()
	ranges := make(map[uint64]dataworker.BlockRange, len(j.spokeClients))
	for _, c := range j.spokeClients {
		var start uint64
		if proposed {
			if end, ok := latest.EndBlockForChain(c.ChainID(), chainIds); ok {
				start = end + 1
			}
		}

		ranges[c.ChainID()] = dataworker.BlockRange{
			Start: start,
			End:   c.LatestBlockSearched(),
		}
	}
	return ranges
}

// Start builds a bundle every interval until the context is cancelled.
func (j *BundleJob) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		bundle, err := j.Build(ctx)
		if err != nil {
			log.Err(err).Msgf("Failed building bundle")
		} else {
			select {
			case j.bundleChn <- bundle:
			case <-ctx.Done():
				return
			}
		}

		select {
		case <-ticker.C:
			continue
		case <-ctx.Done():
			return
		}
	}
}
