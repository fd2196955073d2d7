package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"readability/internal/domain"
)

// ReportCache is an LRU of reports keyed by text content, with a TTL.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
	gen     uint64
	hits    uint64
	misses  uint64
}

type cacheEntry struct {
	report    domain.Report
	timestamp time.Time
	gen       uint64
}

func NewReportCache(maxSize int, ttl time.Duration) *ReportCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ReportCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func cacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:16])
}

func (c *ReportCache) Get(text string) (domain.Report, bool) {
	key := cacheKey(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.misses++
		return domain.Report{}, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.gen != c.gen {
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.misses++
		return domain.Report{}, false
	}

	c.moveToEnd(key)
	c.hits++
	return entry.report, true
}

func (c *ReportCache) Put(text string, report domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(text)
	entry := &cacheEntry{
		report:    report,
		timestamp: time.Now(),
		gen:       c.gen,
	}

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry
	c.order = append(c.order, key)
}

// Invalidate drops every entry, e.g. after scoring settings change.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.gen++
}

func (c *ReportCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *ReportCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *ReportCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ReportCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *ReportCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Reporter scores a text.
type Reporter interface {
	Report(text string) domain.Report
}

// CachedReporter serves repeated texts from a ReportCache.
type CachedReporter struct {
	reporter Reporter
	cache    *ReportCache
}

func NewCachedReporter(reporter Reporter, cache *ReportCache) *CachedReporter {
	return &CachedReporter{
		reporter: reporter,
		cache:    cache,
	}
}

func (r *CachedReporter) Report(text string) domain.Report {
	if report, hit := r.cache.Get(text); hit {
		return report
	}

	report := r.reporter.Report(text)
	r.cache.Put(text, report)
	return report
}
