package api

import (
	"net/http"
	"strconv"

	"sharegov/internal/domain"
)

// --- shared resources ---

func (h *Handler) listSharedResources(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	items, err := h.services.SharedResources.ListForDataShare(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createSharedResource(w http.ResponseWriter, r *http.Request) {
	var res domain.SharedResource
	if !decodeBody(w, r, &res) {
		return
	}
	created, err := h.services.SharedResources.Create(r.Context(), &res)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getSharedResource(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	res, err := h.services.SharedResources.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) updateSharedResource(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var res domain.SharedResource
	if !decodeBody(w, r, &res) {
		return
	}
	res.ID = id
	updated, err := h.services.SharedResources.Update(r.Context(), &res)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteSharedResource(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.services.SharedResources.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- data share in dataset ---

func (h *Handler) listShareInDataset(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ShareInDataset.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createShareInDataset(w http.ResponseWriter, r *http.Request) {
	var link domain.DataShareInDataset
	if !decodeBody(w, r, &link) {
		return
	}
	created, err := h.services.ShareInDataset.Create(r.Context(), &link)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getShareInDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	link, err := h.services.ShareInDataset.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) updateShareInDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var link domain.DataShareInDataset
	if !decodeBody(w, r, &link) {
		return
	}
	link.ID = id
	updated, err := h.services.ShareInDataset.Update(r.Context(), &link)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteShareInDataset(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.services.ShareInDataset.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- dataset in project ---

func (h *Handler) listDatasetInProject(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.DatasetProject.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createDatasetInProject(w http.ResponseWriter, r *http.Request) {
	var link domain.DatasetInProject
	if !decodeBody(w, r, &link) {
		return
	}
	created, err := h.services.DatasetProject.Create(r.Context(), &link)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getDatasetInProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	link, err := h.services.DatasetProject.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) updateDatasetInProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var link domain.DatasetInProject
	if !decodeBody(w, r, &link) {
		return
	}
	link.ID = id
	updated, err := h.services.DatasetProject.Update(r.Context(), &link)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteDatasetInProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.services.DatasetProject.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- audit ---

func (h *Handler) listAudit(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "invalid limit parameter",
			})
			return
		}
		limit = n
	}
	entries, err := h.services.Audit.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
