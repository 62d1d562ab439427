package notes

import (
	"context"
	"log/slog"

	"playground-service/internal/model"
	"playground-service/internal/repository"
	svc "playground-service/internal/service"
)

var _ svc.NoteService = (*service)(nil)

// service хранилище документов - источник истины, поисковый индекс - производная проекция.
// Запись в индекс выполняется после успешной записи в хранилище, её ошибка только логируется.
type service struct {
	noteRepository   repository.NoteRepository
	searchRepository repository.NoteSearchRepository
	logger           *slog.Logger
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками
func NewNoteService(
	noteRepository repository.NoteRepository,
	searchRepository repository.NoteSearchRepository,
	logger *slog.Logger,
) svc.NoteService {
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		noteRepository:   noteRepository,
		searchRepository: searchRepository,
		logger:           logger,
	}
}

// FindAll возвращает список всех заметок
func (s *service) FindAll(ctx context.Context) ([]model.Note, error) {
	return s.noteRepository.FindAll(ctx)
}

// FindByID возвращает заметку по её ID
func (s *service) FindByID(ctx context.Context, id string) (model.Note, error) {
	return s.noteRepository.FindByID(ctx, id)
}

// Search ищет заметки в поисковом индексе
func (s *service) Search(ctx context.Context, query string) ([]model.NoteDocument, error) {
	docs, err := s.searchRepository.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "notes search finished", "query", query, "hits", len(docs))
	return docs, nil
}

// Create сохраняет заметку и пытается проиндексировать её
func (s *service) Create(ctx context.Context, data model.NoteData) (model.Note, error) {
	note, err := s.noteRepository.Create(ctx, data)
	if err != nil {
		return model.Note{}, err
	}

	if err := s.searchRepository.Index(ctx, note); err != nil {
		s.logger.ErrorContext(ctx, "failed to index note", "id", note.ID, "error", err)
	}

	return note, nil
}

// Update заменяет заметку; переиндексация только если заметка существовала
func (s *service) Update(ctx context.Context, id string, data model.NoteData) (model.Note, error) {
	note, err := s.noteRepository.Update(ctx, id, data)
	if err != nil {
		return model.Note{}, err
	}

	if err := s.searchRepository.Index(ctx, note); err != nil {
		s.logger.ErrorContext(ctx, "failed to re-index note", "id", id, "error", err)
	}

	return note, nil
}

// Delete удаляет заметку; удаление из индекса только после успешного удаления из хранилища
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.noteRepository.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.searchRepository.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete note from index", "id", id, "error", err)
	}

	return nil
}
