package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sanikac1014/Altu-health-app/pkg/config"
	"github.com/sanikac1014/Altu-health-app/pkg/logger"
)

// Custom error types
var (
	ErrCacheNotFound   = errors.New("cache: key not found")
	ErrCacheConnection = errors.New("cache: connection error")
	ErrInvalidConfig   = errors.New("cache: invalid configuration")
)

// Config holds the configuration for the Redis client
type Config struct {
	Addr             string
	Password         string
	DB               int
	PoolSize         int
	MinIdleConns     int
	MaxRetries       int
	ConnTimeout      time.Duration
	OperationTimeout time.Duration
	DefaultTTL       time.Duration
	MaxKeyLength     int
	KeyPrefix        string
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PoolSize:         20,
		MinIdleConns:     2,
		MaxRetries:       3,
		ConnTimeout:      5 * time.Second,
		OperationTimeout: 2 * time.Second,
		DefaultTTL:       5 * time.Minute,
		MaxKeyLength:     256,
		KeyPrefix:        "altu:",
	}
}

// NewConfigFromEnv creates a Redis config from project configuration
func NewConfigFromEnv(cfg *config.Config) *Config {
	c := DefaultConfig()
	c.Addr = fmt.Sprintf("%s:%d", cfg.Cache.Host, cfg.Cache.Port)
	c.Password = cfg.Cache.Password
	c.DB = cfg.Cache.DB
	if cfg.Cache.TTL > 0 {
		c.DefaultTTL = cfg.Cache.TTL
	}
	return c
}

// CacheMetrics tracks cache hit/miss statistics with atomic operations
type CacheMetrics struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// RedisClient wraps the Redis client with additional functionality
type RedisClient struct {
	client    *redis.Client
	metrics   *CacheMetrics
	config    *Config
	log       *logger.Logger
	closeOnce sync.Once
	health    int32 // 0 = healthy, 1 = unhealthy, using atomic operations
}

// NewRedisClient creates a new Redis client with the provided configuration
func NewRedisClient(cfg *Config, log *logger.Logger) (*RedisClient, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidConfig)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	r := &RedisClient{
		client:  client,
		config:  cfg,
		metrics: &CacheMetrics{},
		log:     log,
	}

	go r.healthCheckLoop()

	return r, nil
}

// healthCheckLoop periodically checks Redis health
func (r *RedisClient) healthCheckLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), r.config.OperationTimeout)
		if err := r.HealthCheck(ctx); err != nil {
			atomic.StoreInt32(&r.health, 1)
			r.log.Error("Redis health check failed", zap.Error(err))
		} else {
			atomic.StoreInt32(&r.health, 0)
		}
		cancel()
	}
}

// IsHealthy returns whether Redis is currently healthy
func (r *RedisClient) IsHealthy() bool {
	return atomic.LoadInt32(&r.health) == 0
}

// withContext wraps the context with a timeout if none is set
func (r *RedisClient) withContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, r.config.OperationTimeout)
	}
	return ctx, func() {}
}

func (r *RedisClient) validateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidConfig)
	}
	if len(key) > r.config.MaxKeyLength {
		return fmt.Errorf("%w: key too long (max %d characters)", ErrInvalidConfig, r.config.MaxKeyLength)
	}
	return nil
}

func (r *RedisClient) prefixKey(key string) string {
	return r.config.KeyPrefix + key
}

// Get retrieves a value from the cache
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	if err := r.validateKey(key); err != nil {
		return "", err
	}

	if !r.IsHealthy() {
		return "", ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefixKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			r.metrics.misses.Add(1)
			return "", fmt.Errorf("%w: %s", ErrCacheNotFound, key)
		}
		return "", fmt.Errorf("%w: %v", ErrCacheConnection, err)
	}

	r.metrics.hits.Add(1)
	return val, nil
}

// Set stores a value in the cache. A zero ttl falls back to the default.
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.validateKey(key); err != nil {
		return err
	}

	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	if ttl <= 0 {
		ttl = r.config.DefaultTTL
	}
	return r.client.Set(ctx, r.prefixKey(key), value, ttl).Err()
}

// Delete removes values from the cache
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	prefixedKeys := make([]string, len(keys))
	for i, key := range keys {
		if err := r.validateKey(key); err != nil {
			return err
		}
		prefixedKeys[i] = r.prefixKey(key)
	}

	return r.client.Del(ctx, prefixedKeys...).Err()
}

// HealthCheck checks if Redis is responding
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// ExportMetrics returns hit/miss counters and pool stats for the metrics
// endpoint.
func (r *RedisClient) ExportMetrics() map[string]float64 {
	stats := r.client.PoolStats()
	return map[string]float64{
		"cache_hits":       float64(r.metrics.hits.Load()),
		"cache_misses":     float64(r.metrics.misses.Load()),
		"pool_total_conns": float64(stats.TotalConns),
		"pool_idle_conns":  float64(stats.IdleConns),
		"pool_stale_conns": float64(stats.StaleConns),
	}
}

// Close properly closes the Redis client
func (r *RedisClient) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.client.Close()
	})
	return err
}
