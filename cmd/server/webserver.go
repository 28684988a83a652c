package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// webServer wires the scheduler into HTTP: workers join over the /ws
// websocket, image consumers block on /image.png until the render is
// done, and /progress reports completion for polling UIs.
func webServer(port int, sched *tileScheduler, log *zap.SugaredLogger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(sched, log))
	mux.HandleFunc("/image.png", imageHandler(sched))
	mux.HandleFunc("/progress", progressHandler(sched))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler upgrades a worker connection and plugs it into the
// scheduler.
func websocketHandler(sched *tileScheduler, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Warnw("websocket accept", "err", err)
			return
		}
		if err := sched.serveWorker(r.Context(), c); err != nil {
			log.Warnw("worker connection ended", "err", err)
			c.Close(websocket.StatusInternalError, "worker error")
		}
	}
}

func imageHandler(sched *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := sched.Image(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusRequestTimeout)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		png.Encode(w, img)
	}
}

func progressHandler(sched *tileScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]float32{"progress": sched.progress()})
	}
}
