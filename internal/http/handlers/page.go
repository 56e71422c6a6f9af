package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"detailpage/internal/domain"
)

func (a *App) GetPage(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.State.Get())
}

// PutPage merges a partial document over the current one. Fields absent
// from the payload keep their current values; fields present replace
// them wholesale, including the image slots and option list.
//
// Options and the watermark map go through presence-detecting shadow
// fields: decoding straight into the current document would make the
// JSON decoder merge incoming elements over the existing backing array,
// grafting stale IDs and images onto replacement options.
func (a *App) PutPage(w http.ResponseWriter, r *http.Request) {
	current := a.State.Get()
	patch := struct {
		*domain.ProductData
		Options           *[]domain.ProductOption             `json:"options"`
		WatermarkSettings *map[string]domain.WatermarkSetting `json:"watermarkSettings"`
	}{ProductData: &current}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if patch.Options != nil {
		current.Options = *patch.Options
	}
	if patch.WatermarkSettings != nil {
		current.WatermarkSettings = *patch.WatermarkSettings
	}
	for i := range current.Options {
		if current.Options[i].ID == "" {
			current.Options[i].ID = uuid.NewString()
		}
	}
	a.State.Replace(current)
	a.json(w, http.StatusOK, a.State.Get())
}
