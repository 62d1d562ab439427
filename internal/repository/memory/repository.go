package memory

import (
	"context"
	"fmt"
	"sync"

	"playground-service/internal/model"
	"playground-service/internal/repository"

	"github.com/google/uuid"
)

var _ repository.NoteRepository = (*repo)(nil)

type repo struct {
	mu    sync.RWMutex
	notes map[string]model.Note
}

// NewRepository создает новый экземпляр in-memory репозитория на основе map.
// Идентификаторы заметок - UUID.
func NewRepository() repository.NoteRepository {
	return &repo{
		notes: make(map[string]model.Note),
	}
}

// parseID приводит ID к каноническому виду UUID
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	return parsed.String(), nil
}

// FindAll возвращает список всех заметок
func (r *repo) FindAll(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, 0, len(r.notes))
	for _, note := range r.notes {
		notes = append(notes, note)
	}

	return notes, nil
}

// FindByID возвращает заметку по её ID
func (r *repo) FindByID(ctx context.Context, id string) (model.Note, error) {
	key, err := parseID(id)
	if err != nil {
		return model.Note{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[key]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	return note, nil
}

// Create создает новую заметку и возвращает созданную заметку с ID
func (r *repo) Create(ctx context.Context, data model.NoteData) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note := model.Note{
		ID:      uuid.New().String(),
		Title:   data.Title,
		Content: data.Content,
	}
	r.notes[note.ID] = note

	return note, nil
}

// Update заменяет заметку целиком, ID не меняется.
// Если содержимое не изменилось, возвращает ErrNoteNotFound.
func (r *repo) Update(ctx context.Context, id string, data model.NoteData) (model.Note, error) {
	key, err := parseID(id)
	if err != nil {
		return model.Note{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.notes[key]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	note := model.Note{
		ID:      key,
		Title:   data.Title,
		Content: data.Content,
	}
	// Замена без изменений считается отсутствием заметки, как в MongoDB (ModifiedCount == 0)
	if note == current {
		return model.Note{}, repository.ErrNoteNotFound
	}
	r.notes[key] = note

	return note, nil
}

// Delete удаляет заметку по ID
func (r *repo) Delete(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[key]; !exists {
		return repository.ErrNoteNotFound
	}

	delete(r.notes, key)

	return nil
}
