package repository

import "go.uber.org/fx"

// Module wires the device-token registry: a Postgres-backed store of
// registered tokens fronted by an in-process cache.
var Module = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewPersistent,
			fx.As(new(PersistentProvider)),
		),
		NewPersistentConfig,
		fx.Annotate(
			NewCache,
			fx.As(new(CacheProvider)),
		),
		NewCacheConfig,
	),
)
