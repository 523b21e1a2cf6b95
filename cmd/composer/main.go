package main

import (
	"log"
	"os"

	"github.com/danilovkiri/dk_go_url_composer/internal/app"
	"github.com/danilovkiri/dk_go_url_composer/internal/config"
	composerService "github.com/danilovkiri/dk_go_url_composer/internal/service/composer/v1"
)

func main() {
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	cfg.ParseFlags()
	// initialize the composing service over stdout
	processor, err := composerService.InitComposer(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	application := &app.App{Config: cfg, Processor: processor}
	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}
