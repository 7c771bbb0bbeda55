package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/personacli/internal/buildinfo"
	"github.com/dmitrijs2005/personacli/internal/client/cli"
	"github.com/dmitrijs2005/personacli/internal/client/config"
	"github.com/dmitrijs2005/personacli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
