//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/yaebk/cs390-podcast/internal/adapter/logging"
	"github.com/yaebk/cs390-podcast/internal/app"
	"github.com/yaebk/cs390-podcast/internal/config"
	"github.com/yaebk/cs390-podcast/internal/domain/ports"
	"github.com/yaebk/cs390-podcast/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideNewsProvider,
		provideScriptWriter,
		provideSpeechSynthesizer,
		usecase.NewBriefing,
		app.New,
		provideSchedule,
	)
	return nil, nil
}
