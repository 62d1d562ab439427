// Package apiv1 содержит типы запросов и ответов REST API.
// Теги validate проверяются на границе HTTP до вызова доменного слоя.
package apiv1

// NoteRequest тело POST /notes и PUT /notes/{id}.
// Оба поля обязательны, пустая строка допустима.
type NoteRequest struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// NewNoteRequest создает NoteRequest с заданными полями
func NewNoteRequest(title, content string) NoteRequest {
	return NoteRequest{Title: &title, Content: &content}
}

// Note заметка в ответах API
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Increment тело POST /increments и ответ GET /increments/{key}
type Increment struct {
	Key   string `json:"key" validate:"required"`
	Value int64  `json:"value"`
}

// Greeting ответ GET /hello
type Greeting struct {
	Message string `json:"message"`
}

// ErrorDetails тело ответа с ошибкой
type ErrorDetails struct {
	Reason            string `json:"error"`
	InternalErrorCode string `json:"code"`
}
