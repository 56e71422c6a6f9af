package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"detailpage/internal/domain"
)

type sectionStatus struct {
	Name   domain.Section `json:"name"`
	Active bool           `json:"active"`
}

func (a *App) ListSections(w http.ResponseWriter, r *http.Request) {
	data := a.State.Get()
	statuses := make([]sectionStatus, 0, len(domain.Sections))
	for _, s := range domain.Sections {
		statuses = append(statuses, sectionStatus{Name: s, Active: data.SectionActive(s)})
	}
	a.json(w, http.StatusOK, map[string]any{"sections": statuses})
}

func (a *App) EnableSection(w http.ResponseWriter, r *http.Request) {
	sec := domain.Section(chi.URLParam(r, "name"))
	if !domain.KnownSection(sec) {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown section")
		return
	}
	updated := a.State.Update(func(d domain.ProductData) domain.ProductData {
		d.EnableSection(sec)
		return d
	})
	a.json(w, http.StatusOK, updated)
}

func (a *App) DisableSection(w http.ResponseWriter, r *http.Request) {
	sec := domain.Section(chi.URLParam(r, "name"))
	if !domain.KnownSection(sec) {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown section")
		return
	}
	updated := a.State.Update(func(d domain.ProductData) domain.ProductData {
		d.DisableSection(sec)
		return d
	})
	a.json(w, http.StatusOK, updated)
}
