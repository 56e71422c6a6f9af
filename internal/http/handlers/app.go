package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"detailpage/internal/copywriter"
	"detailpage/internal/export"
	"detailpage/internal/infra"
	"detailpage/internal/snapshot"
	"detailpage/internal/state"
)

// App carries the wired services behind the HTTP surface. Copy is nil
// when no copywriting provider is configured; the handler reports that
// as a precondition failure instead of refusing to boot.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	State     *state.Store
	Snapshots *snapshot.Store
	Copy      copywriter.Writer
	Exporter  *export.Exporter

	gate opGate
}

func NewApp(cfg *infra.Config, logger infra.Logger, st *state.Store, snaps *snapshot.Store, writer copywriter.Writer, exp *export.Exporter) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		State:     st,
		Snapshots: snaps,
		Copy:      writer,
		Exporter:  exp,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": errCode, "message": msg}})
}

// opGate serializes long-running operation families. A second request
// for a busy family is rejected, never queued.
type opGate struct {
	mu   sync.Mutex
	busy map[string]bool
}

func (g *opGate) tryAcquire(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy == nil {
		g.busy = make(map[string]bool)
	}
	if g.busy[name] {
		return false
	}
	g.busy[name] = true
	return true
}

func (g *opGate) release(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, name)
}
