package viewer

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphpaint/internal/domain"
	"graphpaint/internal/handler"
)

func drawing(svg string) handler.Drawing {
	return handler.Drawing{Scene: &domain.Scene{}, SVG: []byte(svg)}
}

// startViewer runs Show in the background and returns the viewer URL and
// a channel receiving Show's result.
func startViewer(t *testing.T, ctx context.Context, opts Options, d handler.Drawing) (string, <-chan error) {
	t.Helper()

	urls := make(chan string, 1)
	opts.Addr = "127.0.0.1:0"
	opts.Log = zap.NewNop()
	opts.Open = func(url string) error {
		urls <- url
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- Show(ctx, opts, d) }()

	select {
	case url := <-urls:
		return url, done
	case err := <-done:
		t.Fatalf("viewer exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("viewer did not start")
	}
	return "", nil
}

func connectEvents(t *testing.T, ctx context.Context, url string) *bufio.Reader {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	r := bufio.NewReader(resp.Body)
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, ": connected\n", line)
	return r
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("viewer did not return")
		return nil
	}
}

func TestShowServesDrawing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	url, done := startViewer(t, ctx, Options{Title: "g", CloseGrace: time.Second}, drawing("<svg>first</svg>"))

	resp, err := http.Get(url + "graph.svg")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "<svg>first</svg>", string(body))

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestShowReturnsWhenPageCloses(t *testing.T) {
	url, done := startViewer(t, context.Background(), Options{CloseGrace: 50 * time.Millisecond}, drawing("<svg/>"))

	pageCtx, closePage := context.WithCancel(context.Background())
	connectEvents(t, pageCtx, url)

	select {
	case err := <-done:
		t.Fatalf("viewer returned while page open: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	closePage()
	assert.NoError(t, waitDone(t, done))
}

func TestShowSurvivesReload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	url, done := startViewer(t, ctx, Options{CloseGrace: 500 * time.Millisecond}, drawing("<svg/>"))

	first, closeFirst := context.WithCancel(context.Background())
	connectEvents(t, first, url)
	closeFirst()

	second, closeSecond := context.WithCancel(context.Background())
	defer closeSecond()
	connectEvents(t, second, url)

	select {
	case err := <-done:
		t.Fatalf("viewer returned during reload: %v", err)
	case <-time.After(time.Second):
	}

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestShowWatchPushesUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.lp")
	require.NoError(t, os.WriteFile(path, []byte("edge(a, b).\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := Options{
		CloseGrace: time.Second,
		WatchPath:  path,
		Rerender: func() (handler.Drawing, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return handler.Drawing{}, err
			}
			return drawing("<svg>" + strings.TrimSpace(string(data)) + "</svg>"), nil
		},
	}
	url, done := startViewer(t, ctx, opts, drawing("<svg>edge(a, b).</svg>"))

	events := connectEvents(t, ctx, url)

	// Give the watcher time to register the directory
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("edge(b, c).\n"), 0644))

	got := make(chan string, 1)
	go func() {
		for {
			line, err := events.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "data:") {
				got <- strings.TrimSpace(line)
				return
			}
		}
	}()

	select {
	case line := <-got:
		assert.Contains(t, line, `"type":"scene-updated"`)
		assert.Contains(t, line, `"version":2`)
	case <-time.After(5 * time.Second):
		t.Fatal("expected scene-updated event")
	}

	resp, err := http.Get(url + "graph.svg")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "<svg>edge(b, c).</svg>", string(body))

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestShowListenError(t *testing.T) {
	err := Show(context.Background(), Options{Addr: "not-an-address"}, drawing("<svg/>"))
	assert.Error(t, err)
}
