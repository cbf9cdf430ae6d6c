//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	adapterrepo "github.com/eslsoft/wordlist/internal/adapter/repository"
	"github.com/eslsoft/wordlist/internal/infrastructure/config"
	"github.com/eslsoft/wordlist/internal/infrastructure/logger"
	"github.com/eslsoft/wordlist/internal/repository"
	"github.com/eslsoft/wordlist/internal/usecase"
)

var loggerSet = wire.NewSet(
	logger.NewLogger,
)

var llmSet = wire.NewSet(
	ProvideCompleter,
	ProvideEnricher,
)

var repositorySet = wire.NewSet(
	ProvideWordlistWriter,
	wire.Bind(new(repository.WordlistWriter), new(*adapterrepo.JSONFileWriter)),
)

var usecaseSet = wire.NewSet(
	usecase.NewWordlistUsecase,
)

// Initialize builds the application container using Wire.
func Initialize(cfg *config.Config, stdout Stdout) (*Container, error) {
	wire.Build(
		loggerSet,
		llmSet,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}
