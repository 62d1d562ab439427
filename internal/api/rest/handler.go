// Package rest реализует HTTP ресурсы сервиса: заметки, счетчики и приветствие.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"playground-service/internal/repository"
	svc "playground-service/internal/service"
	apiv1 "playground-service/pkg/api/v1"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// Handler HTTP ресурсы сервиса
type Handler struct {
	noteService svc.NoteService
	increments  repository.IncrementRepository
	validate    *validator.Validate
	logger      *slog.Logger
	mux         *http.ServeMux
}

// NewHandler создает Handler и регистрирует маршруты
func NewHandler(noteService svc.NoteService, increments repository.IncrementRepository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		noteService: noteService,
		increments:  increments,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
		mux:         http.NewServeMux(),
	}
	h.routes()
	return h
}

// ServeHTTP делает Handler http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	// Заметки
	h.mux.HandleFunc("GET /notes", h.listNotes)
	h.mux.HandleFunc("GET /notes/search", h.searchNotes)
	h.mux.HandleFunc("GET /notes/{id}", h.getNote)
	h.mux.HandleFunc("POST /notes", h.createNote)
	h.mux.HandleFunc("PUT /notes/{id}", h.updateNote)
	h.mux.HandleFunc("DELETE /notes/{id}", h.deleteNote)

	// Счетчики
	h.mux.HandleFunc("GET /increments", h.listIncrementKeys)
	h.mux.HandleFunc("POST /increments", h.createIncrement)
	h.mux.HandleFunc("GET /increments/{key}", h.getIncrement)
	h.mux.HandleFunc("PUT /increments/{key}", h.updateIncrement)
	h.mux.HandleFunc("DELETE /increments/{key}", h.deleteIncrement)

	h.mux.HandleFunc("GET /hello", h.hello)
}

// requestError ошибка разбора или валидации тела запроса
type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// decodeJSON читает ровно одно JSON значение, отвергая неизвестные поля,
// и валидирует структуры по тегам validate
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return &requestError{fmt.Errorf("invalid request body: %w", err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &requestError{errors.New("invalid request body: unexpected data after JSON value")}
	}

	if err := h.validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// не структура (например, число) - валидировать нечего
			return nil
		}
		return &requestError{fmt.Errorf("validation failed: %w", err)}
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleError конвертирует внутренние ошибки в HTTP статусы с детализацией
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError

	switch {
	case errors.Is(err, repository.ErrNoteNotFound), errors.Is(err, repository.ErrInvalidID):
		// некорректный ID не может совпасть ни с одной записью - это тоже 404
		writeJSON(w, http.StatusNotFound, apiv1.ErrorDetails{
			Reason:            "note not found",
			InternalErrorCode: "NOTE_NOT_FOUND",
		})
	case errors.As(err, &reqErr):
		writeJSON(w, http.StatusBadRequest, apiv1.ErrorDetails{
			Reason:            reqErr.Error(),
			InternalErrorCode: "VALIDATION_ERROR",
		})
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiv1.ErrorDetails{
			Reason:            "internal error",
			InternalErrorCode: "INTERNAL_ERROR",
		})
	}
}
