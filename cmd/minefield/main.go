package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/logging"
	"github.com/vancomm/minefield/internal/minefield"
	"github.com/vancomm/minefield/internal/repl"
)

var (
	log = logrus.New()

	configPath string
	layoutPath string
	mines      int
	side       int
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&layoutPath, "layout", "", "play the fixed layout in this file ('.' empty, 'X' mine)")
	flag.IntVar(&mines, "mines", -1, "number of mines; asked for when not set")
	flag.IntVar(&side, "side", 0, "side of the board (overrides the config)")
}

func newBoard(cfg *config.Config, r *repl.REPL) (*minefield.Board, error) {
	if layoutPath != "" {
		f, err := os.Open(layoutPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return minefield.ReadLayout(f, nil)
	}

	if side > 0 {
		cfg.Board.Side = side
	}
	n := mines
	if n < 0 {
		var err error
		if n, err = r.AskMines(cfg.Board.Side); err != nil {
			return nil, err
		}
	}
	return minefield.NewRandom(cfg.Board.Side, n, nil)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	// The board owns stdout; keep diagnostics quiet unless asked for.
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	minefield.Log = log

	r := repl.New(os.Stdin, os.Stdout, log)

	b, err := newBoard(cfg, r)
	if err == nil {
		_, err = r.Play(b)
	}
	if errors.Is(err, io.EOF) {
		fmt.Println()
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
