package main

import (
	"context"
	"image"
	"image/draw"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"

	"github.com/marben/dynago/tiles"
)

// tileScheduler tracks which tiles of the image are unstarted, in flight
// or merged. Workers pull tiles concurrently; once every tile has landed
// the context is cancelled, which releases image waiters.
type tileScheduler struct {
	job tiles.Job
	img *image.RGBA

	ctx       context.Context
	ctxCancel context.CancelFunc

	workers        int
	totalPixels    int
	finishedPixels int

	unstarted map[tiles.Tile]struct{}
	inProcess map[tiles.Tile]struct{}
	m         sync.Mutex

	log *zap.SugaredLogger
}

func newTileScheduler(job tiles.Job, tileSize int, log *zap.SugaredLogger) *tileScheduler {
	img := image.NewRGBA(image.Rect(0, 0, job.Width, job.Height))
	all := tiles.Split(job.Width, job.Height, tileSize, tileSize)
	unstarted := make(map[tiles.Tile]struct{}, len(all))
	for _, t := range all {
		unstarted[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &tileScheduler{
		job:         job,
		img:         img,
		ctx:         ctx,
		ctxCancel:   cancel,
		totalPixels: job.Width * job.Height,
		unstarted:   unstarted,
		inProcess:   make(map[tiles.Tile]struct{}),
		log:         log,
	}
}

func (s *tileScheduler) popTile() (tile tiles.Tile, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	// Get unstarted tile
	if len(s.unstarted) > 0 {
		for tile = range s.unstarted {
			break
		}
		delete(s.unstarted, tile)

		// Move popped tile to currently processed tiles
		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(s.inProcess) > 0 {
		for tile = range s.inProcess {
			break
		}
		return tile, true
	}

	return tiles.Tile{}, false
}

func (s *tileScheduler) tileFinished(res tiles.TileResult) error {
	tileImg, err := res.Image()
	if err != nil {
		return err
	}

	s.m.Lock()
	defer s.m.Unlock()

	draw.Draw(
		s.img,
		tileImg.Rect,     // destination rectangle (global coords)
		tileImg,          // source image
		tileImg.Rect.Min, // source start
		draw.Src,
	)

	if _, found := s.inProcess[res.Tile]; found {
		s.finishedPixels += res.Tile.W * res.Tile.H
	}
	delete(s.inProcess, res.Tile)

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		s.ctxCancel()
	}

	s.log.Infow("tile finished", "tile", res.Tile.String(),
		"progress", float32(s.finishedPixels)/float32(s.totalPixels))
	return nil
}

func (s *tileScheduler) progress() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

// Image blocks until the whole plane has been merged, or the caller's
// context expires.
func (s *tileScheduler) Image(ctx context.Context) (*image.RGBA, error) {
	select {
	case <-s.ctx.Done():
		return s.img, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *tileScheduler) incActiveWorker() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()
	s.log.Infow("worker joined", "workers", w)
}

func (s *tileScheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()
	s.log.Infow("worker left", "workers", w)
}

// serveWorker feeds unfinished tiles to one connected worker until no
// work remains or the connection drops. Safe to run for many workers in
// parallel.
func (s *tileScheduler) serveWorker(ctx context.Context, conn *websocket.Conn) error {
	s.incActiveWorker()
	defer s.decActiveWorkers()

	for {
		tile, found := s.popTile()
		if !found {
			break
		}
		req := tiles.TileRequest{Job: s.job, Tile: tile}
		if err := wsjson.Write(ctx, conn, req); err != nil {
			return err
		}
		var res tiles.TileResult
		if err := wsjson.Read(ctx, conn, &res); err != nil {
			return err
		}
		if err := s.tileFinished(res); err != nil {
			s.log.Warnw("bad tile result", "tile", tile.String(), "err", err)
		}
	}
	return conn.Close(websocket.StatusNormalClosure, "render complete")
}
