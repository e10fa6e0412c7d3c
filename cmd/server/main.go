package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"minesweeper/config"
	"minesweeper/server"
)

func main() {
	fs := flag.NewFlagSet("minesweeper-server", flag.ExitOnError)
	flags := config.NewFlags(fs).Addr()
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	log, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	server.New(cfg, log).Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithField("addr", cfg.Addr).Info("✅ Serveur démarré")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("erreur du serveur")
	}
}
