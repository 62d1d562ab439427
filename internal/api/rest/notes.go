package rest

import (
	"net/http"

	"playground-service/internal/converter"
	apiv1 "playground-service/pkg/api/v1"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "fetching all notes")

	notes, err := h.noteService.FindAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelsToAPI(notes))
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.logger.InfoContext(r.Context(), "fetching note", "id", id)

	note, err := h.noteService.FindByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelToAPI(note))
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	h.logger.InfoContext(r.Context(), "searching notes", "q", q)

	docs, err := h.noteService.Search(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.DocumentsToAPI(docs))
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req apiv1.NoteRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	data := converter.RequestToNoteData(req)
	h.logger.InfoContext(r.Context(), "creating note", "title", data.Title)

	note, err := h.noteService.Create(r.Context(), data)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelToAPI(note))
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req apiv1.NoteRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "updating note", "id", id)

	note, err := h.noteService.Update(r.Context(), id, converter.RequestToNoteData(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelToAPI(note))
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.logger.InfoContext(r.Context(), "deleting note", "id", id)

	if err := h.noteService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
