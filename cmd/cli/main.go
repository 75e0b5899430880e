package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/animalspotter/internal/buildinfo"
	"github.com/dmitrijs2005/animalspotter/internal/client/cli"
	"github.com/dmitrijs2005/animalspotter/internal/client/client"
	"github.com/dmitrijs2005/animalspotter/internal/client/config"
	"github.com/dmitrijs2005/animalspotter/internal/client/services"
	"github.com/dmitrijs2005/animalspotter/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, cfg.LogLevel)

	apiClient, err := client.NewHTTPClient(cfg.ServerBaseURL, nil, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	as := services.NewAuthService(apiClient, logger)
	ss := services.NewSightingService(apiClient)

	app := cli.NewApp(cfg, as, ss, logger)
	app.Run(ctx)

}
