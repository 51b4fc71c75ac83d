//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/vibe-english-platform/vocabcli/internal/infrastructure/config"
)

var configSet = wire.NewSet(
	config.Load,
)

var infraSet = wire.NewSet(
	provideLogger,
	provideTokenStore,
	provideWordCache,
	provideHistory,
	provideAPIClient,
	provideNotifier,
)

var usecaseSet = wire.NewSet(
	provideLearnFlow,
	provideCollectionBrowser,
	provideNavigator,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		infraSet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
