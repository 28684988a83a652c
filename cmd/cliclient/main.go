// cliclient fetches the fully rendered image from the distributed render
// server and saves it as a PNG file. Rendering is performed by the
// workers; the server only coordinates, so this call blocks until every
// tile has been merged.
package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
)

type config struct {
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	Out       string `env:"OUT" envDefault:"plane.png"`
}

func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	log.Printf("Requesting fully rendered image from %s...", cfg.ServerURL)
	resp, err := http.Get(cfg.ServerURL + "/image.png")
	if err != nil {
		return fmt.Errorf("failed to contact server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	log.Printf("Saving rendered image to %q...", cfg.Out)
	f, err := os.Create(cfg.Out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	log.Printf("Fully rendered image saved to %q", cfg.Out)
	return nil
}
