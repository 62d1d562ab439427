package rest

import (
	"net/http"

	"playground-service/internal/converter"
	"playground-service/internal/model"
	apiv1 "playground-service/pkg/api/v1"
)

func (h *Handler) listIncrementKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.increments.Keys(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if keys == nil {
		keys = []string{}
	}

	writeJSON(w, http.StatusOK, keys)
}

func (h *Handler) createIncrement(w http.ResponseWriter, r *http.Request) {
	var req apiv1.Increment
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.increments.Set(r.Context(), req.Key, req.Value); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

// getIncrement у счетчиков нет 404: незаданный ключ отдается со значением 0
func (h *Handler) getIncrement(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	value, err := h.increments.Get(r.Context(), key)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.IncrementToAPI(model.Increment{Key: key, Value: value}))
}

// updateIncrement тело запроса - целое число, на которое увеличивается счетчик
func (h *Handler) updateIncrement(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var delta int64
	if err := h.decodeJSON(w, r, &delta); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.increments.Increment(r.Context(), key, delta); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteIncrement(w http.ResponseWriter, r *http.Request) {
	if err := h.increments.Delete(r.Context(), r.PathValue("key")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
