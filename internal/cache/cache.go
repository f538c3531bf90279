package cache

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheItem represents a cached item with expiration
type CacheItem struct {
	Data      []byte
	ExpiresAt time.Time
	storedAt  time.Time
}

// Recorder receives hit and miss events. *monitoring.Metrics satisfies it.
type Recorder interface {
	IncrementCacheHit()
	IncrementCacheMiss()
}

// Cache is a TTL cache for rendered analysis responses. Analysis output is a
// pure function of the request body, so a body hash is a sound key.
type Cache struct {
	mu      sync.RWMutex
	items   map[string]*CacheItem
	ttl     time.Duration
	maxSize int
	now     func() time.Time

	hits      int64
	misses    int64
	evictions int64
}

// NewCache creates a cache. maxSize <= 0 means unbounded. Expired items are
// dropped on read and by PurgeExpired, which the scheduler runs.
func NewCache(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		items:   make(map[string]*CacheItem),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Key hashes the parts into a cache key.
func Key(parts ...[]byte) string {
	h := md5.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves an item from the cache
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	if c.now().After(item.ExpiresAt) {
		c.Delete(key)
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	return item.Data, true
}

// Set stores an item, evicting the oldest entry when the cache is full.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.items[key]; !exists && c.maxSize > 0 && len(c.items) >= c.maxSize {
		c.evictOldest()
	}
	c.items[key] = &CacheItem{
		Data:      data,
		ExpiresAt: now.Add(c.ttl),
		storedAt:  now,
	}
}

// evictOldest must be called with mu held.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for k, item := range c.items {
		if oldestKey == "" || item.storedAt.Before(oldest) {
			oldestKey, oldest = k, item.storedAt
		}
	}
	if oldestKey != "" {
		delete(c.items, oldestKey)
		atomic.AddInt64(&c.evictions, 1)
	}
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*CacheItem)
}

// PurgeExpired drops expired items and reports how many were removed.
func (c *Cache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, item := range c.items {
		if now.After(item.ExpiresAt) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	total := len(c.items)
	expired := 0
	now := c.now()
	for _, item := range c.items {
		if now.After(item.ExpiresAt) {
			expired++
		}
	}
	c.mu.RUnlock()

	return map[string]interface{}{
		"total_items":   total,
		"expired_items": expired,
		"active_items":  total - expired,
		"max_items":     c.maxSize,
		"ttl_seconds":   c.ttl.Seconds(),
		"hits":          atomic.LoadInt64(&c.hits),
		"misses":        atomic.LoadInt64(&c.misses),
		"evictions":     atomic.LoadInt64(&c.evictions),
	}
}

// Middleware caches successful POST responses for the given paths, keyed by
// path and request body.
func (c *Cache) Middleware(metrics Recorder, paths ...string) gin.HandlerFunc {
	cached := make(map[string]bool, len(paths))
	for _, p := range paths {
		cached[p] = true
	}

	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodPost || !cached[ctx.Request.URL.Path] {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			// replay what was read, then the same failure, so the handler can map it
			ctx.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), failedReader{err}))
			ctx.Next()
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		cacheKey := Key([]byte(ctx.Request.URL.Path), body)

		if cachedData, found := c.Get(cacheKey); found {
			slog.Debug("Cache hit", "key", cacheKey[:8]+"...")
			if metrics != nil {
				metrics.IncrementCacheHit()
			}
			ctx.Header("X-Cache", "HIT")
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", cachedData)
			ctx.Abort()
			return
		}

		slog.Debug("Cache miss", "key", cacheKey[:8]+"...")
		if metrics != nil {
			metrics.IncrementCacheMiss()
		}

		ctx.Header("X-Cache", "MISS")
		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = wrapper
		ctx.Next()

		if wrapper.Status() == http.StatusOK && wrapper.body.Len() > 0 {
			c.Set(cacheKey, wrapper.body.Bytes())
		}
	}
}

type failedReader struct{ err error }

func (r failedReader) Read([]byte) (int, error) { return 0, r.err }

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
