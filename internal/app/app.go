// Package app provides the application assembly for the URL composer.
package app

import (
	"github.com/danilovkiri/dk_go_url_composer/internal/config"
	"github.com/danilovkiri/dk_go_url_composer/internal/service/composer"
)

// App wires the configuration and the composing service.
type App struct {
	Config    *config.Config
	Processor composer.Processor
}

// Run constructs one URL value from the configuration and displays it.
func (app *App) Run() error {
	full := app.Processor.Construct(app.Config.Protocol, app.Config.Resource)
	return app.Processor.Display(full)
}
