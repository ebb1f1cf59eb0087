package main

import (
	"os"

	"github.com/koliko-tech/admin-backend/internal/app"
	config "github.com/koliko-tech/admin-backend/internal/cfg"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	backend, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize application")
		os.Exit(1)
	}

	if err := backend.Run(); err != nil {
		os.Exit(1)
	}
}
