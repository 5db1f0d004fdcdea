package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/across-dataworker/dataworker"
)

const (
	LATEST_KEY = "latest"
)

// BundleCache keeps the recently built bundles so proofs can be served for them
// until they expire.
type BundleCache struct {
	bundleCache *ttlcache.Cache[string, *dataworker.Bundle]
}

func NewBundleCache(ctx context.Context, ttl time.Duration, bundleChn chan *dataworker.Bundle) *BundleCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *dataworker.Bundle](ttl),
	)

	bc := &BundleCache{
		bundleCache: cache,
	}

	go cache.Start()
	go bc.watch(ctx, bundleChn)
	return bc
}

// Bundle returns the cached bundle with the hex encoded id.
func (c *BundleCache) Bundle(id string) (*dataworker.Bundle, error) {
	bundle := c.bundleCache.Get(id)
	if bundle == nil {
		return nil, fmt.Errorf("no bundle found with id %s", id)
	}

	return bundle.Value(), nil
}

func (c *BundleCache) Latest() (*dataworker.Bundle, error) {
	return c.Bundle(LATEST_KEY)
}

func (c *BundleCache) watch(ctx context.Context, bundleChn chan *dataworker.Bundle) {
	for {
		select {
		case bundle := <-bundleChn:
			{
				id := bundle.ID().Hex()
				log.Debug().Msgf("Caching bundle with ID: %s", id)
				c.bundleCache.Set(id, bundle, ttlcache.DefaultTTL)
				c.bundleCache.Set(LATEST_KEY, bundle, ttlcache.DefaultTTL)
			}
		case <-ctx.Done():
			{
				c.bundleCache.Stop()
				return
			}
		}
	}
}
