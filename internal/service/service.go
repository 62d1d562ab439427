package service

import (
	"context"

	"playground-service/internal/model"
)

// NoteService интерфейс для бизнес-логики работы с заметками
type NoteService interface {
	// FindAll возвращает список всех заметок
	FindAll(ctx context.Context) ([]model.Note, error)

	// FindByID возвращает заметку по её ID
	FindByID(ctx context.Context, id string) (model.Note, error)

	// Search ищет заметки в поисковом индексе
	Search(ctx context.Context, query string) ([]model.NoteDocument, error)

	// Create создает заметку и зеркалирует её в поисковый индекс
	Create(ctx context.Context, data model.NoteData) (model.Note, error)

	// Update заменяет заметку и переиндексирует её
	Update(ctx context.Context, id string, data model.NoteData) (model.Note, error)

	// Delete удаляет заметку из хранилища и из индекса
	Delete(ctx context.Context, id string) error
}
