package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/wordlist/internal/infrastructure/config"
	"github.com/eslsoft/wordlist/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Enricher *usecase.Enricher
	Wordlist *usecase.WordlistUsecase
}
