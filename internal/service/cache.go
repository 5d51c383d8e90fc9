// Package service contains the business logic of the feeding service.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/feeding-service/internal/metrics"
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/guttosm/feeding-service/internal/service/cache"
)

// ShardedCache spreads entries over independently locked TTL LRU shards.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint32
}

// NewShardedCache creates a sharded cache with the given total capacity and TTL.
// numShards is rounded up to a power of two; non-positive values default to 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShardCapacity := capacity / n
	if perShardCapacity < 1 {
		perShardCapacity = 1
	}

	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShardCapacity, ttl)
	}

	return &ShardedCache{
		shards:    shards,
		shardMask: uint32(n - 1),
	}
}

func (sc *ShardedCache) getShard(key string) *ttlCache {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (sc *ShardedCache) Get(key string) (nutrition.Plan, bool) {
	return sc.getShard(key).Get(key)
}

// Set stores a value in the appropriate shard.
func (sc *ShardedCache) Set(key string, value nutrition.Plan) {
	sc.getShard(key).Set(key, value)
}

// Invalidate removes a key from the appropriate shard.
func (sc *ShardedCache) Invalidate(key string) {
	sc.getShard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop shuts down the cleanup goroutine of every shard.
func (sc *ShardedCache) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after ttl.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
	now       func() time.Time
}

type cacheEntry struct {
	key       string
	value     nutrition.Plan
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a TTL LRU cache and starts its cleanup goroutine.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		now:      time.Now,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get retrieves a value if it exists and hasn't expired.
func (c *ttlCache) Get(key string) (nutrition.Plan, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return nutrition.Plan{}, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		if current, stillExists := c.items[key]; stillExists && current == entry {
			c.removeEntry(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return nutrition.Plan{}, false
	}

	c.mu.Lock()
	if current, stillExists := c.items[key]; stillExists && current == entry {
		c.moveToFront(entry)
	}
	value := entry.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set adds or updates a value. At capacity the least recently used entry is evicted.
func (c *ttlCache) Set(key string, value nutrition.Plan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = c.now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// startCleanup sweeps expired entries once a minute while the cache is over 80% full.
func (c *ttlCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.RLock()
			shouldCleanup := len(c.items) > (c.capacity * 80 / 100)
			c.mu.RUnlock()

			if shouldCleanup {
				c.cleanup()
			}
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries from the cache.
func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	currentTime := c.now()
	for _, entry := range c.items {
		if currentTime.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *ttlCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *ttlCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// remove unlinks an entry without touching the map.
func (c *ttlCache) remove(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

func (c *ttlCache) removeTail() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
}

// Invalidate removes a specific key from the cache.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the hit/miss counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}
