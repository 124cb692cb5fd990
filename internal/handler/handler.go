package handler

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	"graphpaint/internal/domain"
)

//go:embed web/index.html
var webFS embed.FS

var pageTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

// Drawing is one rendered state of the graph shown by the viewer
type Drawing struct {
	Scene *domain.Scene
	SVG   []byte
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ViewerHandler serves the current drawing and its live event stream
type ViewerHandler struct {
	log    *zap.Logger
	title  string
	events http.Handler

	mu      sync.RWMutex
	drawing Drawing
	version int
}

// NewViewerHandler creates a viewer handler. events serves the SSE stream.
func NewViewerHandler(log *zap.Logger, title string, events http.Handler, d Drawing) *ViewerHandler {
	return &ViewerHandler{
		log:     log,
		title:   title,
		events:  events,
		drawing: d,
		version: 1,
	}
}

// Update replaces the drawing served to clients and returns its version
func (h *ViewerHandler) Update(d Drawing) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drawing = d
	h.version++
	return h.version
}

func (h *ViewerHandler) current() (Drawing, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.drawing, h.version
}

// Routes returns the viewer's HTTP handler with middleware applied
func (h *ViewerHandler) Routes() http.Handler {
	router := httprouter.New()
	router.GET("/", h.Index)
	router.GET("/graph.svg", h.GetSVG)
	router.GET("/api/scene", h.GetScene)
	router.Handler(http.MethodGet, "/events", h.events)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(h.log, w, "Not found", r.URL.Path, http.StatusNotFound)
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(h.log, w, "Method not allowed", r.Method, http.StatusMethodNotAllowed)
	})

	return alice.New(Recover(h.log), Logger(h.log)).Then(router)
}

// Index renders the viewer page
func (h *ViewerHandler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_, version := h.current()

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, struct {
		Title   string
		Version int
	}{h.title, version}); err != nil {
		h.log.Error("Failed to render page", zap.Error(err))
		writeError(h.log, w, "Failed to render page", err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// GetSVG returns the current drawing as SVG
func (h *ViewerHandler) GetSVG(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	d, _ := h.current()
	if len(d.SVG) == 0 {
		writeError(h.log, w, "No drawing", "nothing has been rendered yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(d.SVG)
}

// GetScene returns the current scene as JSON
func (h *ViewerHandler) GetScene(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	d, _ := h.current()
	if d.Scene == nil {
		writeError(h.log, w, "No scene", "nothing has been rendered yet", http.StatusServiceUnavailable)
		return
	}

	writeJSON(h.log, w, d.Scene, http.StatusOK)
}

func writeJSON(log *zap.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn("Failed to encode JSON", zap.Error(err))
	}
}

func writeError(log *zap.Logger, w http.ResponseWriter, error, details string, statusCode int) {
	writeJSON(log, w, ErrorResponse{Error: error, Details: details}, statusCode)
}
