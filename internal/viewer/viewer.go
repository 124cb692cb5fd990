// Package viewer displays a rendered graph in the system browser and blocks
// until the viewer page is closed.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"graphpaint/internal/handler"
	"graphpaint/internal/hub"
	"graphpaint/internal/watcher"
)

const shutdownTimeout = 5 * time.Second

var errViewerClosed = errors.New("viewer closed")

// RenderFunc produces a fresh drawing, used when the watched file changes
type RenderFunc func() (handler.Drawing, error)

// Options configures a viewer session
type Options struct {
	Addr       string
	Title      string
	CloseGrace time.Duration

	// Open is called with the viewer URL once it is listening. Nil leaves
	// opening the page to the user.
	Open func(url string) error

	// WatchPath, when set, re-renders through Rerender whenever the file changes
	WatchPath string
	Rerender  RenderFunc

	Log *zap.Logger
}

// Show serves d on a loopback HTTP viewer and blocks until the page has been
// closed for longer than the close grace, or ctx is cancelled. Neither is an
// error.
func Show(ctx context.Context, opts Options, d handler.Drawing) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", opts.Addr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	presence := make(chan int, 16)
	events := hub.New(log)
	events.OnClientCount(func(n int) {
		select {
		case presence <- n:
		case <-gctx.Done():
		}
	})

	views := handler.NewViewerHandler(log, opts.Title, events, d)
	srv := &http.Server{
		Handler:           views.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return gctx
		},
	}

	g.Go(func() error {
		return events.Run(gctx)
	})

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve viewer: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Viewer shutdown", zap.Error(err))
			srv.Close()
		}
		return nil
	})

	g.Go(func() error {
		return waitClosed(gctx, presence, opts.CloseGrace, log)
	})

	if opts.WatchPath != "" && opts.Rerender != nil {
		w := watcher.New(opts.WatchPath, log, func() {
			next, err := opts.Rerender()
			if err != nil {
				log.Warn("Re-render failed", zap.Error(err))
				events.Broadcast(hub.Event{Type: hub.EventRenderFailed, Error: err.Error()})
				return
			}
			version := views.Update(next)
			events.Broadcast(hub.Event{Type: hub.EventSceneUpdated, Version: version})
		})
		g.Go(func() error {
			return w.Watch(gctx)
		})
	}

	url := "http://" + ln.Addr().String() + "/"
	log.Info("Viewer listening", zap.String("url", url))
	if opts.Open != nil {
		if err := opts.Open(url); err != nil {
			log.Warn("Could not open browser, open the URL manually", zap.String("url", url), zap.Error(err))
		}
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errViewerClosed) {
		return err
	}
	return nil
}

// waitClosed returns errViewerClosed once at least one page has connected and
// then none has been connected for grace.
func waitClosed(ctx context.Context, presence <-chan int, grace time.Duration, log *zap.Logger) error {
	var (
		seen    bool
		timer   *time.Timer
		expired <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case n := <-presence:
			if n > 0 {
				seen = true
				if timer != nil {
					timer.Stop()
				}
				expired = nil
				continue
			}
			if seen {
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(grace)
				expired = timer.C
			}

		case <-expired:
			log.Info("Viewer page closed")
			return errViewerClosed

		case <-ctx.Done():
			return nil
		}
	}
}
