package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"detailpage/internal/domain"
)

func (a *App) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	if err := a.Snapshots.Save(r.Context(), slot, a.State.Get()); err != nil {
		if errors.Is(err, domain.ErrInvalidSlot) {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid slot name")
			return
		}
		a.Logger.Error().Err(err).Str("slot", slot).Msg("snapshot: save failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to save snapshot")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"saved": slot})
}

// RestoreSnapshot replaces the working document with a stored one.
// Legacy snapshots missing newer fields load over the defaults, so the
// restored document is always complete.
func (a *App) RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	data, err := a.Snapshots.Load(r.Context(), slot)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusNotFound, "not_found", "snapshot not found")
		case errors.Is(err, domain.ErrInvalidSlot):
			a.error(w, http.StatusBadRequest, "bad_request", "invalid slot name")
		case errors.Is(err, domain.ErrInvalidSnapshot):
			a.error(w, http.StatusBadRequest, "bad_request", "invalid snapshot")
		default:
			a.Logger.Error().Err(err).Str("slot", slot).Msg("snapshot: load failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load snapshot")
		}
		return
	}
	a.State.Replace(data)
	a.json(w, http.StatusOK, a.State.Get())
}
