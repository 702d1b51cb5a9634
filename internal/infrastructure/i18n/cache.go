package i18n

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bundleCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mesabot_i18n_bundle_cache_hits_total",
		Help: "Bundle lookups served from the memoization cache.",
	})
	bundleCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mesabot_i18n_bundle_cache_misses_total",
		Help: "Bundle lookups that had to load documents from disk.",
	})
	bundleCacheClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mesabot_i18n_bundle_cache_clears_total",
		Help: "Explicit invalidations of the bundle cache.",
	})
	skippedDocuments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mesabot_i18n_skipped_documents_total",
		Help: "Bundle documents skipped because they could not be read or parsed.",
	}, []string{"locale"})
	missingKeys = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mesabot_i18n_missing_keys_total",
		Help: "Lookups that found no message in the requested nor the default locale.",
	}, []string{"locale"})
)

// minCacheSize keeps room for every locale of a small canonical set.
const minCacheSize = 16

// bundleCache memoizes bundles per canonical locale. Clearing swaps the whole
// LRU for a fresh one, so readers see either the old or the new container.
type bundleCache struct {
	size    int
	entries atomic.Pointer[lru.Cache[string, *Bundle]]
}

func newBundleCache(locales int) *bundleCache {
	c := &bundleCache{size: max(locales, minCacheSize)}
	c.clear()
	return c
}

// current returns the live container. Callers that load a bundle add it to
// the container they started with, so a bundle built before a clear never
// lands in the cache that replaced it.
func (c *bundleCache) current() *lru.Cache[string, *Bundle] {
	return c.entries.Load()
}

func (c *bundleCache) clear() {
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[string, *Bundle](c.size)
	c.entries.Store(entries)
}
