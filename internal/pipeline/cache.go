package pipeline

import (
	"context"
	"sync"

	"github.com/skybrief/metar-speech/internal/domain"
	"github.com/skybrief/metar-speech/internal/observability"
)

// CachedTransformer wraps a Transformer with an in-memory LRU cache keyed by
// station and raw report text. Stations republish the same METAR on every
// refresh between observations, so identical reports render once.
type CachedTransformer struct {
	inner   Transformer
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedTransformer creates a cache decorator around a transformer.
func NewCachedTransformer(inner Transformer, maxEntries int, metrics *observability.Metrics) *CachedTransformer {
	return &CachedTransformer{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.Briefing, error) {
	key := string(raw.Value)
	if briefing, ok := c.cache.get(key); ok {
		c.metrics.RenderCache.WithLabelValues("hit").Inc()
		return briefing, nil
	}
	c.metrics.RenderCache.WithLabelValues("miss").Inc()

	briefing, err := c.inner.Transform(ctx, raw)
	if err != nil {
		return briefing, err
	}
	// Only cache briefings with a stable identity; a payload without a raw
	// report string may be a hand-built probe that shouldn't pin the cache.
	if briefing.RawReport != "" {
		c.cache.put(key, briefing)
	}
	return briefing, nil
}

// lruCache is a simple thread-safe LRU cache for rendered briefings.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.Briefing
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.Briefing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Briefing{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.Briefing) {
	if c.maxEntries <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.pushFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *lruCache) pushFront(e *entry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	if c.head == e {
		c.head = e.next
	}
	if c.tail == e {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	evicted := c.tail
	c.unlink(evicted)
	delete(c.entries, evicted.key)
}
