package main

import (
	"fmt"
	"log"

	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/app"
	"github.com/ayusman/playsight/internal/config"
	"github.com/ayusman/playsight/internal/metrics"
	"github.com/ayusman/playsight/internal/server"
	"github.com/ayusman/playsight/internal/store"
)

func main() {
	fmt.Println("Playsight - Parent-Child Play Analysis")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	m := metrics.New()

	// All collaborators are constructed once here and injected; nothing is
	// lazily initialized at module level.
	var provider annotation.Provider
	if cfg.FixtureProvider {
		provider = &annotation.FixtureProvider{Duration: cfg.FixtureDuration}
		log.Println("Using fixture annotation provider")
	}

	application := app.New(app.Config{
		Store:    st,
		Provider: provider,
		Metrics:  m,
	})

	srv := server.New(server.Config{
		StaticDir: cfg.StaticDir,
		Store:     st,
		App:       application,
		Metrics:   m,
	})

	fmt.Printf("Starting server on %s\n", cfg.Addr)
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
