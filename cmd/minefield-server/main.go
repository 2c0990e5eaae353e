package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/app"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/logging"
	"github.com/vancomm/minefield/internal/minefield"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	minefield.Log = log

	log.WithFields(cfg.Fields()).Info("starting server")

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	a, err := app.New(log, cfg)
	if err != nil {
		log.Fatal("unable to create app: ", err)
	}

	if err := a.Start(ctx); err != nil {
		log.Fatal(err)
	}
	log.Info("server stopped")
}
