package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/homeseed/internal/logging"
	"github.com/dmitrijs2005/homeseed/internal/seeder"
	"github.com/dmitrijs2005/homeseed/internal/seeder/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, sync, err := logging.New(cfg.LogBackend, cfg.LogLevel)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app := seeder.NewApp(cfg, logger)

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "seeding failed", "error", err)
		sync()
		os.Exit(1)
	}
	sync()
}
