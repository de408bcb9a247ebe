package main

import (
	"github.com/ATorresTatis/power-pushwoosh/internal/handler"
	"github.com/ATorresTatis/power-pushwoosh/internal/metrics"
	"github.com/ATorresTatis/power-pushwoosh/internal/repository"
	"github.com/ATorresTatis/power-pushwoosh/internal/server"
	"github.com/ATorresTatis/power-pushwoosh/internal/service"
	"github.com/ATorresTatis/power-pushwoosh/pushwoosh"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	fx.New(
		fx.Provide(func() *zap.Logger { return logger }),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		metrics.Module,
		server.Module,
		handler.Module,
		service.Module,
		repository.Module,
		pushwoosh.Module,
		fx.Invoke(func(*server.HTTPServer) {}),
	).Run()
}
