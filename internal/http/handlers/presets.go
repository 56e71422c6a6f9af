package handlers

import (
	"net/http"

	"detailpage/internal/domain"
	"detailpage/internal/export"
)

// ListPresets returns the editor's fixed choices: theme colors and the
// thumbnail sizes the export pipeline produces.
func (a *App) ListPresets(w http.ResponseWriter, r *http.Request) {
	sizes := make([]string, 0, len(export.ThumbnailPresets))
	for _, p := range export.ThumbnailPresets {
		sizes = append(sizes, p.String())
	}
	a.json(w, http.StatusOK, map[string]any{
		"themeColors":    domain.ColorPresets,
		"thumbnailSizes": sizes,
	})
}
