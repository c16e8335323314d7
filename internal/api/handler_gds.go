package api

import (
	"net/http"

	"sharegov/internal/domain"
)

// --- datasets ---

func (h *Handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Datasets.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createDataset(w http.ResponseWriter, r *http.Request) {
	var ds domain.Dataset
	if !decodeBody(w, r, &ds) {
		return
	}
	created, err := h.services.Datasets.Create(r.Context(), &ds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	ds, err := h.services.Datasets.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (h *Handler) updateDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var ds domain.Dataset
	if !decodeBody(w, r, &ds) {
		return
	}
	ds.ID = id
	updated, err := h.services.Datasets.Update(r.Context(), &ds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.services.Datasets.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- projects ---

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Projects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var p domain.Project
	if !decodeBody(w, r, &p) {
		return
	}
	created, err := h.services.Projects.Create(r.Context(), &p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, err := h.services.Projects.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p domain.Project
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = id
	updated, err := h.services.Projects.Update(r.Context(), &p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.services.Projects.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- data shares ---

func (h *Handler) listDataShares(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.DataShares.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createDataShare(w http.ResponseWriter, r *http.Request) {
	var sh domain.DataShare
	if !decodeBody(w, r, &sh) {
		return
	}
	created, err := h.services.DataShares.Create(r.Context(), &sh)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getDataShare(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	sh, err := h.services.DataShares.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sh)
}

func (h *Handler) updateDataShare(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var sh domain.DataShare
	if !decodeBody(w, r, &sh) {
		return
	}
	sh.ID = id
	updated, err := h.services.DataShares.Update(r.Context(), &sh)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteDataShare(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.services.DataShares.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
