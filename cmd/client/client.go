// The client is a render worker: it connects to the server's websocket,
// receives tile requests, computes and colors each tile locally and
// streams the pixels back. Run as many as you have machines.
package main

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"

	"github.com/marben/dynago/render"
	"github.com/marben/dynago/tiles"
)

type config struct {
	ServerURL string `env:"SERVER_URL" envDefault:"ws://localhost:8080/ws"`
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

	ctx := context.Background()
	log.Infow("connecting", "url", cfg.ServerURL)
	conn, _, err := websocket.Dial(ctx, cfg.ServerURL, nil)
	if err != nil {
		return fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.CloseNow()

	pal := render.DefaultPalette()

	for {
		var req tiles.TileRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			// Normal closure means the render is complete.
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				log.Infow("render complete")
				return nil
			}
			return fmt.Errorf("read tile request: %w", err)
		}

		log.Infow("rendering", "tile", req.Tile.String())
		res, err := tiles.Render(req.Job, req.Tile, pal)
		if err != nil {
			return fmt.Errorf("render %s: %w", req.Tile, err)
		}

		if err := wsjson.Write(ctx, conn, res); err != nil {
			return fmt.Errorf("send tile result: %w", err)
		}
	}
}
