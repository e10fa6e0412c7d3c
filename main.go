package main

import (
	"errors"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/config"
	"minesweeper/game"
	"minesweeper/term"
)

func main() {
	fs := flag.NewFlagSet("minesweeper", flag.ExitOnError)
	flags := config.NewFlags(fs).Locale()
	noClear := fs.Bool("no-clear", false, "do not clear the terminal between turns")
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	term.SetupLocale(cfg.Locale)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, err := game.New(mrand.New(mrand.NewSource(seed)), cfg.Width, cfg.Height, cfg.Mines)
	if err != nil {
		log.WithError(err).Fatal("plateau invalide")
	}
	log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"mines":  cfg.Mines,
		"seed":   seed,
	}).Debug("nouvelle partie")

	s := term.NewSession(board, os.Stdin, os.Stdout, log)
	s.ClearScreen = !*noClear
	res, err := s.Run()
	if err != nil {
		if errors.Is(err, term.ErrInputClosed) {
			return
		}
		log.WithError(err).Fatal("erreur du terminal")
	}
	log.WithField("result", res).Debug("fin de partie")
}
