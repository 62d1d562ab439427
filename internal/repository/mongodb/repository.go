// Package mongodb реализует репозиторий заметок поверх MongoDB (коллекция "notes").
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"playground-service/internal/model"
	"playground-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// CollectionName имя коллекции с заметками
const CollectionName = "notes"

var _ repository.NoteRepository = (*Repository)(nil)

// noteRecord документ заметки в коллекции
type noteRecord struct {
	ID      bson.ObjectID `bson:"_id"`
	Title   string        `bson:"title"`
	Content string        `bson:"content"`
}

func (r noteRecord) toModel() model.Note {
	return model.Note{
		ID:      r.ID.Hex(),
		Title:   r.Title,
		Content: r.Content,
	}
}

// Repository репозиторий заметок в MongoDB
type Repository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect подключается к MongoDB и проверяет соединение.
// Клиент создается один раз на процесс и закрывается через Close.
func Connect(ctx context.Context, uri, database string) (*Repository, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Repository{
		client:     client,
		collection: client.Database(database).Collection(CollectionName),
	}, nil
}

// parseID разбирает hex-представление ObjectID
func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	return oid, nil
}

func byID(oid bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}}
}

// FindAll возвращает все заметки коллекции
func (r *Repository) FindAll(ctx context.Context) ([]model.Note, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}

	var records []noteRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	notes := make([]model.Note, 0, len(records))
	for _, rec := range records {
		notes = append(notes, rec.toModel())
	}
	return notes, nil
}

// FindByID возвращает заметку по её ID
func (r *Repository) FindByID(ctx context.Context, id string) (model.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Note{}, err
	}

	var rec noteRecord
	if err := findError(id, r.collection.FindOne(ctx, byID(oid)).Decode(&rec)); err != nil {
		return model.Note{}, err
	}

	return rec.toModel(), nil
}

// Create вставляет новую заметку с новым ObjectID
func (r *Repository) Create(ctx context.Context, data model.NoteData) (model.Note, error) {
	rec := noteRecord{
		ID:      bson.NewObjectID(),
		Title:   data.Title,
		Content: data.Content,
	}

	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		return model.Note{}, fmt.Errorf("insert note: %w", err)
	}

	return rec.toModel(), nil
}

// Update заменяет документ целиком.
// Если документ не был изменен (нет такого ID или содержимое совпало), возвращает ErrNoteNotFound.
func (r *Repository) Update(ctx context.Context, id string, data model.NoteData) (model.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Note{}, err
	}

	rec := noteRecord{
		ID:      oid,
		Title:   data.Title,
		Content: data.Content,
	}

	result, err := r.collection.ReplaceOne(ctx, byID(oid), rec)
	if err != nil {
		return model.Note{}, fmt.Errorf("replace note %s: %w", id, err)
	}
	if err := replaceError(result); err != nil {
		return model.Note{}, err
	}

	return rec.toModel(), nil
}

// Delete удаляет заметку по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, byID(oid))
	if err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return deleteError(result)
}

func findError(id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNoteNotFound
	}
	if err != nil {
		return fmt.Errorf("find note %s: %w", id, err)
	}
	return nil
}

func replaceError(result *mongo.UpdateResult) error {
	if result.ModifiedCount == 0 {
		return repository.ErrNoteNotFound
	}
	return nil
}

func deleteError(result *mongo.DeleteResult) error {
	if result.DeletedCount == 0 {
		return repository.ErrNoteNotFound
	}
	return nil
}

// Ping проверяет доступность MongoDB
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

// Close закрывает соединение с MongoDB
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
