package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/emergency15/internal/buildinfo"
	"github.com/dmitrijs2005/emergency15/internal/client/cli"
	"github.com/dmitrijs2005/emergency15/internal/client/config"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// The first interrupt cancels in-flight requests and ends the REPL after
	// the current line. Later ones get the default behaviour.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
