package squircle

import "sync"

// DefaultCacheLimit is the number of paths a [Cache] created with a
// non-positive limit holds.
const DefaultCacheLimit = 64

// cacheKey holds normalized inputs. Requests that normalize to the same inputs
// share an entry, and NaNs never make it into a key.
type cacheKey struct {
	size    Size
	radii   Radii
	profile Profile
}

// Cache memoizes [Generate]. Since paths are pure functions of their inputs,
// a cache never has to be invalidated for correctness. [Cache.Invalidate]
// exists for owners that want to drop paths for sizes that no longer occur,
// such as an [Observer] after a resize.
//
// A Cache is safe for concurrent use. The zero value is not usable, use
// [NewCache].
type Cache struct {
	mu      sync.Mutex
	limit   int
	entries map[cacheKey]Path
	stats   CacheStats
}

// CacheStats reports how a cache has been used.
type CacheStats struct {
	Hits   int
	Misses int
	// Entries is the number of paths currently held.
	Entries int
}

// NewCache returns a cache holding at most limit paths. When the limit is
// reached, all entries are dropped before the next one is added.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &Cache{
		limit:   limit,
		entries: make(map[cacheKey]Path),
	}
}

// Path returns the path for the given inputs, generating and storing it if
// necessary. The result is identical to calling [Generate]. Paths for
// degenerate sizes are empty and aren't stored.
func (c *Cache) Path(sz Size, radii CornerRadii, profile Profile) Path {
	if sz.IsDegenerate() {
		return Path{}
	}
	key := cacheKey{
		size:    sz,
		radii:   radii.Resolve(sz),
		profile: profile.Normalize(),
	}

	c.mu.Lock()
	if p, ok := c.entries[key]; ok {
		c.stats.Hits++
		c.mu.Unlock()
		return p
	}
	c.stats.Misses++
	c.mu.Unlock()

	// Generating outside the lock lets concurrent misses for different keys
	// proceed in parallel. Racing misses for the same key produce identical
	// paths.
	p := generate(key.size, key.radii, key.profile)

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.limit {
		Logger().Debug("squircle: cache full, dropping entries", "entries", len(c.entries))
		clear(c.entries)
	}
	c.entries[key] = p
	return p
}

// Invalidate drops all cached paths.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) > 0 {
		Logger().Debug("squircle: cache invalidated", "entries", len(c.entries))
	}
	clear(c.entries)
}

// Stats returns usage statistics.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = len(c.entries)
	return s
}
