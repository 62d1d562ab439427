package repository

import (
	"context"
	"errors"

	"playground-service/internal/model"
)

var (
	// ErrNoteNotFound возвращается, когда заметка не найдена
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidID возвращается, когда строка идентификатора не соответствует формату хранилища
	ErrInvalidID = errors.New("invalid note id")
)

// NoteRepository интерфейс для работы с заметками в документном хранилище
type NoteRepository interface {
	// FindAll возвращает все заметки в порядке хранилища
	FindAll(ctx context.Context) ([]model.Note, error)

	// FindByID возвращает заметку по её ID
	FindByID(ctx context.Context, id string) (model.Note, error)

	// Create генерирует новый ID, сохраняет заметку и возвращает её
	Create(ctx context.Context, data model.NoteData) (model.Note, error)

	// Update полностью заменяет заметку с указанным ID, сохраняя ID
	Update(ctx context.Context, id string, data model.NoteData) (model.Note, error)

	// Delete удаляет заметку по ID
	Delete(ctx context.Context, id string) error
}

// NoteSearchRepository интерфейс поискового индекса заметок
type NoteSearchRepository interface {
	// Index добавляет или перезаписывает документ заметки в индексе
	Index(ctx context.Context, note model.Note) error

	// Delete удаляет документ из индекса
	Delete(ctx context.Context, id string) error

	// Search ищет документы по полям title и content
	Search(ctx context.Context, query string) ([]model.NoteDocument, error)
}

// IncrementRepository интерфейс хранилища счетчиков
type IncrementRepository interface {
	// Get возвращает значение счетчика или 0, если ключ отсутствует
	Get(ctx context.Context, key string) (int64, error)

	// Set безусловно перезаписывает значение
	Set(ctx context.Context, key string, value int64) error

	// Increment атомарно прибавляет delta к значению
	Increment(ctx context.Context, key string, delta int64) error

	// Delete удаляет ключ, отсутствие ключа не является ошибкой
	Delete(ctx context.Context, key string) error

	// Keys возвращает все ключи хранилища в произвольном порядке
	Keys(ctx context.Context) ([]string, error)
}
