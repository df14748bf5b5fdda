package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanikac1014/Altu-health-app/internal/infrastructure/cache"
	"github.com/sanikac1014/Altu-health-app/pkg/logger"
)

// CacheMiddleware caches successful GET responses in Redis. A nil cache
// client turns every method into a passthrough, which is how the server
// runs when caching is disabled.
type CacheMiddleware struct {
	cache  *cache.RedisClient
	prefix string
	ttl    time.Duration
	log    *logger.Logger
}

func NewCacheMiddleware(cache *cache.RedisClient, prefix string, ttl time.Duration, log *logger.Logger) *CacheMiddleware {
	return &CacheMiddleware{
		cache:  cache,
		prefix: prefix,
		ttl:    ttl,
		log:    log,
	}
}

// responseBuffer is a custom ResponseWriter that stores the response
type responseBuffer struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func newResponseBuffer(original gin.ResponseWriter) *responseBuffer {
	return &responseBuffer{
		ResponseWriter: original,
		body:           bytes.NewBufferString(""),
	}
}

func (r *responseBuffer) Write(b []byte) (int, error) {
	r.ResponseWriter.Write(b)
	return r.body.Write(b)
}

func (r *responseBuffer) WriteString(s string) (int, error) {
	r.ResponseWriter.WriteString(s)
	return r.body.WriteString(s)
}

// CacheResponse caches the response of an endpoint
func (m *CacheMiddleware) CacheResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := m.generateCacheKey(c)

		if cached, err := m.cache.Get(c, key); err == nil {
			var response map[string]interface{}
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				c.JSON(http.StatusOK, response)
				c.Abort()
				return
			}
		}

		writer := c.Writer
		buff := newResponseBuffer(writer)
		c.Writer = buff

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := m.cache.Set(c, key, buff.body.String(), m.ttl); err != nil {
				m.log.Error("Failed to cache response", zap.Error(err))
			}
		}

		c.Writer = writer
	}
}

// CacheInvalidate removes the named keys after a successful request.
func (m *CacheMiddleware) CacheInvalidate(keys ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if m.cache == nil {
			return
		}

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			prefixed := make([]string, len(keys))
			for i, key := range keys {
				prefixed[i] = m.prefix + ":" + key
			}
			if err := m.cache.Delete(c, prefixed...); err != nil {
				m.log.Error("Failed to invalidate cache", zap.Error(err), zap.Strings("keys", keys))
			}
		}
	}
}

// generateCacheKey builds the key from the request path and query. There
// are no per-user resources here, so path plus query identifies a response.
func (m *CacheMiddleware) generateCacheKey(c *gin.Context) string {
	parts := []string{m.prefix, strings.Trim(c.Request.URL.Path, "/")}
	if len(c.Request.URL.RawQuery) > 0 {
		parts = append(parts, c.Request.URL.RawQuery)
	}
	return strings.Join(parts, ":")
}
