package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

const (
	cacheKeyPattern = "device_tokens:%s:%s"
)

//go:generate mockgen -package mockrepository -destination ./mock/mockcache.go . CacheProvider
type CacheProvider interface {
	Get(application string, recipient string) ([]DeviceToken, error)
	Set(application string, recipient string, tokens []DeviceToken) error
	Del(application string, recipient string)
}

var _ CacheProvider = (*Cache)(nil)

type Cache struct {
	engine      *ristretto.Cache[string, []DeviceToken]
	expiredTime time.Duration
}

type CacheParams struct {
	fx.In

	Config CacheConfig
}

func NewCache(lc fx.Lifecycle, params CacheParams) (*Cache, error) {
	engine, err := ristretto.NewCache(&ristretto.Config[string, []DeviceToken]{
		NumCounters: params.Config.NumCounters,
		MaxCost:     params.Config.MaxCost,
		BufferItems: params.Config.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			engine.Close()
			return nil
		},
	})

	return &Cache{
		engine:      engine,
		expiredTime: params.Config.ExpiredTime,
	}, nil
}

type CacheConfig struct {
	ExpiredTime time.Duration `envconfig:"CACHE_EXPIRED_TIME" default:"10m"`
	NumCounters int64         `envconfig:"CACHE_NUM_COUNTERS" default:"10000000"`
	MaxCost     int64         `envconfig:"CACHE_MAX_COST" default:"1073741824"` // 1GB
	BufferItems int64         `envconfig:"CACHE_BUFFER_ITEMS" default:"64"`
}

func NewCacheConfig() CacheConfig {
	var cfg CacheConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (c *Cache) Get(application string, recipient string) ([]DeviceToken, error) {
	cacheKey := fmt.Sprintf(cacheKeyPattern, application, recipient)

	value, found := c.engine.Get(cacheKey)
	if !found {
		return nil, fmt.Errorf("cache key: '%s' not found", cacheKey)
	}
	return value, nil
}

func (c *Cache) Set(application string, recipient string, tokens []DeviceToken) error {
	cacheKey := fmt.Sprintf(cacheKeyPattern, application, recipient)

	c.engine.SetWithTTL(cacheKey, tokens, 1, c.expiredTime)
	return nil
}

// Del drops the cached token list, used after a registration changes it.
func (c *Cache) Del(application string, recipient string) {
	c.engine.Del(fmt.Sprintf(cacheKeyPattern, application, recipient))
}
