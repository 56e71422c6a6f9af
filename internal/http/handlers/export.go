package handlers

import (
	"fmt"
	"net/http"

	"detailpage/internal/export"
	"detailpage/pkg/zip"
)

// ExportDetail renders the page and returns either a single image or,
// when segmentation produced multiple parts, a zip archive.
func (a *App) ExportDetail(w http.ResponseWriter, r *http.Request) {
	if !a.gate.tryAcquire("export") {
		a.error(w, http.StatusConflict, "busy", "export already in progress")
		return
	}
	defer a.gate.release("export")

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unsupported format")
		return
	}

	data := a.State.Get()
	files, err := a.Exporter.ExportDetail(r.Context(), data, format)
	if err != nil {
		a.Logger.Error().Err(err).Msg("export: detail page failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}

	if len(files) == 1 {
		a.sendFile(w, files[0])
		return
	}
	a.sendZip(w, export.Filename(data.ProductNameKr, "detail", "zip"), files)
}

// ExportThumbnails renders every thumbnail preset and delivers them as
// one zip archive.
func (a *App) ExportThumbnails(w http.ResponseWriter, r *http.Request) {
	if !a.gate.tryAcquire("export") {
		a.error(w, http.StatusConflict, "busy", "export already in progress")
		return
	}
	defer a.gate.release("export")

	data := a.State.Get()
	files, err := a.Exporter.ExportThumbnails(r.Context(), data, nil)
	if err != nil {
		a.Logger.Error().Err(err).Msg("export: thumbnails failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}
	a.sendZip(w, export.Filename(data.ProductNameKr, "thumbnails", "zip"), files)
}

func (a *App) sendFile(w http.ResponseWriter, f export.File) {
	w.Header().Set("Content-Type", f.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}

func (a *App) sendZip(w http.ResponseWriter, name string, files []export.File) {
	entries := make([]zip.Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, zip.Entry{Name: f.Name, MIME: f.MIME, Data: f.Data})
	}
	blob, err := zip.Archive(entries)
	if err != nil {
		a.Logger.Error().Err(err).Msg("export: zip archive failed")
		a.error(w, http.StatusInternalServerError, "internal", "archive failed")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}
