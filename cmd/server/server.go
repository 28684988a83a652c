// The server coordinates a distributed plane render. It splits the image
// into tiles and deals them out to websocket workers; all actual
// computation happens on the workers. Clients poll the HTTP endpoints for
// progress and the finished image.
package main

import (
	"fmt"
	"net/http"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/marben/dynago/profiles"
	"github.com/marben/dynago/tiles"
)

type config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	Width    int    `env:"WIDTH" envDefault:"1920"`
	Height   int    `env:"HEIGHT" envDefault:"1080"`
	TileSize int    `env:"TILE_SIZE" envDefault:"64"`
	Family   string `env:"FAMILY" envDefault:"mandelbrot"`
	Region   string `env:"REGION" envDefault:"seahorse"`
	MaxIter  int    `env:"MAX_ITER" envDefault:"1000"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(log *zap.SugaredLogger) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	bounds, ok := profiles.Regions[cfg.Region]
	if !ok {
		return fmt.Errorf("unknown region %q", cfg.Region)
	}

	job := tiles.Job{
		Family:  cfg.Family,
		MaxIter: cfg.MaxIter,
		MinX:    bounds.MinX,
		MaxX:    bounds.MaxX,
		MinY:    bounds.MinY,
		MaxY:    bounds.MaxY,
		Width:   cfg.Width,
		Height:  cfg.Height,
	}

	sched := newTileScheduler(job, cfg.TileSize, log)

	srv := webServer(cfg.Port, sched, log)
	log.Infow("listening", "port", cfg.Port, "region", cfg.Region,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
