package handlers

import (
	"net/http"

	"detailpage/internal/domain"
)

// GenerateCopy asks the configured writer for ad copy and applies the
// returned fields to the working document. Only one generation runs at
// a time; concurrent calls get a conflict instead of queueing.
func (a *App) GenerateCopy(w http.ResponseWriter, r *http.Request) {
	if !a.gate.tryAcquire("copywriting") {
		a.error(w, http.StatusConflict, "busy", "copywriting already in progress")
		return
	}
	defer a.gate.release("copywriting")

	if a.Copy == nil {
		a.error(w, http.StatusPreconditionFailed, "precondition_failed", domain.ErrMissingAPIKey.Error())
		return
	}

	data := a.State.Get()
	if data.ProductNameKr == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "productNameKr required")
		return
	}

	patch, err := a.Copy.Generate(r.Context(), data)
	if err != nil {
		a.Logger.Error().Err(err).Msg("copywriting: generation failed")
		a.error(w, http.StatusBadGateway, "provider_failure", "copy generation failed")
		return
	}

	updated := a.State.Update(func(d domain.ProductData) domain.ProductData {
		patch.Apply(&d)
		return d
	})
	a.json(w, http.StatusOK, map[string]any{"patch": patch, "state": updated})
}
