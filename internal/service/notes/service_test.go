package notes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"playground-service/internal/model"
	"playground-service/internal/repository"
)

// mockRepository - простой mock репозитория для тестирования
type mockRepository struct {
	notes       map[string]model.Note
	nextID      int
	createError error
	listError   error
	updateError error
	deleteError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		notes: make(map[string]model.Note),
	}
}

func (m *mockRepository) FindAll(ctx context.Context) ([]model.Note, error) {
	if m.listError != nil {
		return nil, m.listError
	}

	notes := make([]model.Note, 0, len(m.notes))
	for _, note := range m.notes {
		notes = append(notes, note)
	}
	return notes, nil
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (model.Note, error) {
	if strings.HasPrefix(id, "bad") {
		return model.Note{}, repository.ErrInvalidID
	}

	note, exists := m.notes[id]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}
	return note, nil
}

func (m *mockRepository) Create(ctx context.Context, data model.NoteData) (model.Note, error) {
	if m.createError != nil {
		return model.Note{}, m.createError
	}

	m.nextID++
	note := model.Note{
		ID:      fmt.Sprintf("test-id-%d", m.nextID),
		Title:   data.Title,
		Content: data.Content,
	}
	m.notes[note.ID] = note
	return note, nil
}

func (m *mockRepository) Update(ctx context.Context, id string, data model.NoteData) (model.Note, error) {
	if m.updateError != nil {
		return model.Note{}, m.updateError
	}

	if _, exists := m.notes[id]; !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	note := model.Note{ID: id, Title: data.Title, Content: data.Content}
	m.notes[id] = note
	return note, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	if _, exists := m.notes[id]; !exists {
		return repository.ErrNoteNotFound
	}

	delete(m.notes, id)
	return nil
}

// mockSearchRepository - mock поискового индекса, запоминает вызовы
type mockSearchRepository struct {
	docs        map[string]model.NoteDocument
	indexCalls  int
	deleteCalls int
	indexError  error
	deleteError error
	searchError error
}

func newMockSearchRepository() *mockSearchRepository {
	return &mockSearchRepository{
		docs: make(map[string]model.NoteDocument),
	}
}

func (m *mockSearchRepository) Index(ctx context.Context, note model.Note) error {
	m.indexCalls++
	if m.indexError != nil {
		return m.indexError
	}
	m.docs[note.ID] = model.NoteDocument{ID: note.ID, Title: note.Title, Content: note.Content}
	return nil
}

func (m *mockSearchRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.docs, id)
	return nil
}

func (m *mockSearchRepository) Search(ctx context.Context, query string) ([]model.NoteDocument, error) {
	if m.searchError != nil {
		return nil, m.searchError
	}

	docs := make([]model.NoteDocument, 0)
	for _, doc := range m.docs {
		if strings.Contains(doc.Title, query) || strings.Contains(doc.Content, query) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Проверяем, что моки реализуют интерфейсы
var (
	_ repository.NoteRepository       = (*mockRepository)(nil)
	_ repository.NoteSearchRepository = (*mockSearchRepository)(nil)
)

func newTestService() (*mockRepository, *mockSearchRepository, *bytes.Buffer, *service) {
	repo := newMockRepository()
	search := newMockSearchRepository()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))

	return repo, search, logs, NewNoteService(repo, search, logger).(*service)
}

func TestNoteService_Create_Success(t *testing.T) {
	ctx := context.Background()
	_, search, _, service := newTestService()

	note, err := service.Create(ctx, model.NoteData{Title: "Test Note", Content: "Test Content"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if note.ID == "" {
		t.Error("Expected note to have ID")
	}

	if note.Title != "Test Note" || note.Content != "Test Content" {
		t.Errorf("Unexpected note: %+v", note)
	}

	doc, indexed := search.docs[note.ID]
	if !indexed {
		t.Fatal("Expected note to be indexed")
	}
	if doc.Title != note.Title || doc.Content != note.Content {
		t.Errorf("Indexed document %+v does not match note %+v", doc, note)
	}
}

func TestNoteService_Create_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, _, _, service := newTestService()

	created, err := service.Create(ctx, model.NoteData{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	found, err := service.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if found != created {
		t.Errorf("Expected %+v, got %+v", created, found)
	}
}

func TestNoteService_Create_IndexFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	repo, search, logs, service := newTestService()
	search.indexError = errors.New("index unavailable")

	note, err := service.Create(ctx, model.NoteData{Title: "Title", Content: "Content"})
	if err != nil {
		t.Fatalf("Expected index failure to be swallowed, got: %v", err)
	}

	if _, stored := repo.notes[note.ID]; !stored {
		t.Error("Expected note to be persisted despite index failure")
	}

	if !strings.Contains(logs.String(), "failed to index note") {
		t.Errorf("Expected index failure to be logged, got: %q", logs.String())
	}
}

func TestNoteService_Create_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo, search, _, service := newTestService()
	repo.createError = errors.New("store unreachable")

	note, err := service.Create(ctx, model.NoteData{Title: "Title"})
	if err == nil {
		t.Fatal("Expected repository error")
	}

	if note != (model.Note{}) {
		t.Error("Expected empty note on error")
	}

	if search.indexCalls != 0 {
		t.Errorf("Expected no index attempt, got %d", search.indexCalls)
	}
}

func TestNoteService_FindByID_NotFound(t *testing.T) {
	_, _, _, service := newTestService()

	_, err := service.FindByID(context.Background(), "unknown")
	if !errors.Is(err, repository.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound, got: %v", err)
	}
}

func TestNoteService_FindByID_InvalidID(t *testing.T) {
	_, _, _, service := newTestService()

	_, err := service.FindByID(context.Background(), "bad-id")
	if !errors.Is(err, repository.ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got: %v", err)
	}
}

func TestNoteService_FindAll(t *testing.T) {
	ctx := context.Background()
	_, _, _, service := newTestService()

	for i := 0; i < 3; i++ {
		if _, err := service.Create(ctx, model.NoteData{Title: fmt.Sprintf("Note %d", i)}); err != nil {
			t.Fatalf("Failed to create note: %v", err)
		}
	}

	notes, err := service.FindAll(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(notes) != 3 {
		t.Errorf("Expected 3 notes, got %d", len(notes))
	}
}

func TestNoteService_FindAll_Error(t *testing.T) {
	repo, _, _, service := newTestService()
	repo.listError = errors.New("list error")

	if _, err := service.FindAll(context.Background()); err == nil {
		t.Error("Expected error from repository")
	}
}

func TestNoteService_Update_ReplacesAndReindexes(t *testing.T) {
	ctx := context.Background()
	_, search, _, service := newTestService()

	created, err := service.Create(ctx, model.NoteData{Title: "Original", Content: "Original Content"})
	if err != nil {
		t.Fatalf("Failed to create note: %v", err)
	}

	updated, err := service.Update(ctx, created.ID, model.NoteData{Title: "Updated", Content: ""})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("Expected ID %q to be preserved, got %q", created.ID, updated.ID)
	}

	if updated.Title != "Updated" || updated.Content != "" {
		t.Errorf("Expected full replacement, got %+v", updated)
	}

	found, _ := service.FindByID(ctx, created.ID)
	if found != updated {
		t.Errorf("Expected stored note %+v, got %+v", updated, found)
	}

	if search.indexCalls != 2 {
		t.Errorf("Expected 2 index calls, got %d", search.indexCalls)
	}

	if search.docs[created.ID].Title != "Updated" {
		t.Errorf("Expected index to hold updated title, got %q", search.docs[created.ID].Title)
	}
}

func TestNoteService_Update_NotFoundSkipsIndex(t *testing.T) {
	_, search, _, service := newTestService()

	_, err := service.Update(context.Background(), "unknown", model.NoteData{Title: "T"})
	if !errors.Is(err, repository.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound, got: %v", err)
	}

	if search.indexCalls != 0 {
		t.Errorf("Expected no index attempt for missing note, got %d", search.indexCalls)
	}
}

func TestNoteService_Update_IndexFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	_, search, logs, service := newTestService()

	created, _ := service.Create(ctx, model.NoteData{Title: "Title"})
	search.indexError = errors.New("index unavailable")

	updated, err := service.Update(ctx, created.ID, model.NoteData{Title: "New"})
	if err != nil {
		t.Fatalf("Expected index failure to be swallowed, got: %v", err)
	}

	if updated.Title != "New" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}

	if !strings.Contains(logs.String(), "failed to re-index note") {
		t.Errorf("Expected re-index failure to be logged, got: %q", logs.String())
	}

	// индекс остается устаревшим до следующей успешной мутации
	if search.docs[created.ID].Title != "Title" {
		t.Errorf("Expected stale index document, got %+v", search.docs[created.ID])
	}
}

func TestNoteService_Delete_Success(t *testing.T) {
	ctx := context.Background()
	_, search, _, service := newTestService()

	created, _ := service.Create(ctx, model.NoteData{Title: "To Delete"})

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := service.FindByID(ctx, created.ID); !errors.Is(err, repository.ErrNoteNotFound) {
		t.Errorf("Expected note to be deleted, got: %v", err)
	}

	if _, indexed := search.docs[created.ID]; indexed {
		t.Error("Expected document to be removed from index")
	}
}

func TestNoteService_Delete_NotFoundSkipsIndex(t *testing.T) {
	_, search, _, service := newTestService()

	err := service.Delete(context.Background(), "unknown")
	if !errors.Is(err, repository.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound, got: %v", err)
	}

	if search.deleteCalls != 0 {
		t.Errorf("Expected no index delete, got %d", search.deleteCalls)
	}
}

func TestNoteService_Delete_IndexFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	_, search, logs, service := newTestService()

	created, _ := service.Create(ctx, model.NoteData{Title: "Title"})
	search.deleteError = errors.New("index unavailable")

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Expected index failure to be swallowed, got: %v", err)
	}

	if !strings.Contains(logs.String(), "failed to delete note from index") {
		t.Errorf("Expected index delete failure to be logged, got: %q", logs.String())
	}
}

func TestNoteService_Search(t *testing.T) {
	ctx := context.Background()
	_, _, _, service := newTestService()

	created, _ := service.Create(ctx, model.NoteData{Title: "Groceries", Content: "milk"})
	_, _ = service.Create(ctx, model.NoteData{Title: "Work", Content: "report"})

	docs, err := service.Search(ctx, "milk")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(docs) != 1 || docs[0].ID != created.ID {
		t.Errorf("Expected only %q, got %+v", created.ID, docs)
	}
}

func TestNoteService_Search_Error(t *testing.T) {
	_, search, _, service := newTestService()
	search.searchError = errors.New("index unavailable")

	if _, err := service.Search(context.Background(), "q"); err == nil {
		t.Error("Expected search error to propagate")
	}
}
