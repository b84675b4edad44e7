// Package platform wires the platform adapters into a capability registry.
package platform

import (
	"log/slog"

	"reviewhub/config"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/infra/platform/facebook"
	"reviewhub/internal/infra/platform/googleplay"
	"reviewhub/internal/infra/platform/instagram"
	"reviewhub/internal/infra/platform/mybusiness"
	"reviewhub/internal/infra/platform/places"
	"reviewhub/internal/infra/platform/youtube"

	"go.uber.org/fx"
)

// RegistryParams collects every adapter provided to the adapter group.
type RegistryParams struct {
	fx.In

	Adapters []service.PlatformAdapter `group:"platform_adapters"`
}

// NewRegistry indexes the injected adapters.
func NewRegistry(params RegistryParams) *service.Registry {
	return service.NewRegistry(params.Adapters...)
}

func newPageDirectory(cfg *config.Config, logger *slog.Logger) service.PageDirectory {
	return facebook.New(cfg, logger)
}

func asAdapter(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(service.PlatformAdapter)),
		fx.ResultTags(`group:"platform_adapters"`),
	)
}

// Module provides every platform adapter, the registry and the page directory.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		asAdapter(facebook.New),
		asAdapter(instagram.New),
		asAdapter(mybusiness.New),
		asAdapter(places.New),
		asAdapter(googleplay.New),
		asAdapter(youtube.New),
		newPageDirectory,
		NewRegistry,
	),
)
