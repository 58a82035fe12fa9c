package container

import (
	app "builds-bot/internal/application"
	"builds-bot/internal/domain/port"
)

type Container struct {
	Resolver *app.ResolverService
	Builds   *app.BuildService
}

func New(catalog port.HeroCatalog, aliases port.AliasTable, fuzzyThreshold int) *Container {
	resolver := app.NewResolverService(catalog, aliases, nil, fuzzyThreshold)
	builds := app.NewBuildService(catalog)

	return &Container{
		Resolver: resolver,
		Builds:   builds,
	}
}
