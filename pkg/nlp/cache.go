package nlp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/errors"
)

const cacheKeyPrefix = "nlp:analysis:"

// Cache stores encoded analysis results
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedAnalyzer serves repeated texts from a Cache instead of re-running
// the wrapped analyzer. Cache failures are logged and never fail the call.
type CachedAnalyzer struct {
	next   Analyzer
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedAnalyzer wraps next with cache
func NewCachedAnalyzer(next Analyzer, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedAnalyzer{next: next, cache: cache, ttl: ttl, logger: logger}
}

// CacheKey returns the cache key for text
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Analyze returns the cached analysis for text or computes and stores it
func (c *CachedAnalyzer) Analyze(ctx context.Context, text string) (*AnalyzedText, error) {
	key := CacheKey(text)

	raw, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.logger.Warn("analysis cache read failed", zap.Error(errors.ErrCacheFailed("get", err)))
	case ok:
		var cached AnalyzedText
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		c.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	}

	result, err := c.next.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("failed to encode analysis for cache", zap.Error(err))
		return result, nil
	}
	if err := c.cache.Set(ctx, key, encoded, c.ttl); err != nil {
		c.logger.Warn("analysis cache write failed", zap.Error(errors.ErrCacheFailed("set", err)))
	}

	return result, nil
}
