//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"cad/internal"
	"cad/internal/analytics"
	"cad/internal/controllers"
	"cad/internal/parser"
	"cad/internal/providers"
	"cad/internal/services"
	"cad/internal/storage"
	"cad/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		parser.NewParser,
		analytics.NewEngine,
		services.NewChatService,
		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,
		controllers.NewApiController,
		controllers.NewExportController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
