// Package opensearch реализует поисковый индекс заметок поверх OpenSearch.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"playground-service/internal/converter"
	"playground-service/internal/model"
	"playground-service/internal/repository"

	opensearchgo "github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// DefaultIndex имя индекса заметок
const DefaultIndex = "notes"

// indexMapping поля title и content анализируются для полнотекстового поиска
const indexMapping = `{
  "mappings": {
    "properties": {
      "id":      {"type": "keyword"},
      "title":   {"type": "text"},
      "content": {"type": "text"}
    }
  }
}`

var _ repository.NoteSearchRepository = (*SearchRepository)(nil)

// SearchRepository индекс заметок в OpenSearch
type SearchRepository struct {
	client *opensearchapi.Client
	index  string
}

// Connect создает клиента OpenSearch и гарантирует существование индекса
func Connect(ctx context.Context, addresses []string, username, password, index string) (*SearchRepository, error) {
	if index == "" {
		index = DefaultIndex
	}

	client, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearchgo.Config{
			Addresses: addresses,
			Username:  username,
			Password:  password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearchapi.NewClient: %w", err)
	}

	r := &SearchRepository{client: client, index: index}
	if err := r.ensureIndex(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// ensureIndex создает индекс с маппингом; уже существующий индекс не является ошибкой
func (r *SearchRepository) ensureIndex(ctx context.Context) error {
	_, err := r.client.Indices.Create(ctx, opensearchapi.IndicesCreateReq{
		Index: r.index,
		Body:  strings.NewReader(indexMapping),
	})
	if err != nil {
		var structErr *opensearchgo.StructError
		if errors.As(err, &structErr) && structErr.Err.Type == "resource_already_exists_exception" {
			return nil
		}
		return fmt.Errorf("create index %s: %w", r.index, err)
	}
	return nil
}

// Index записывает документ заметки под её ID (повторная запись перезаписывает документ)
func (r *SearchRepository) Index(ctx context.Context, note model.Note) error {
	body, err := json.Marshal(converter.NoteToDocument(note))
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = r.client.Index(ctx, opensearchapi.IndexReq{
		Index:      r.index,
		DocumentID: note.ID,
		Body:       bytes.NewReader(body),
	})
	if err != nil {
		return fmt.Errorf("index document %s: %w", note.ID, err)
	}
	return nil
}

// Delete удаляет документ из индекса. Отсутствующий документ не является ошибкой.
func (r *SearchRepository) Delete(ctx context.Context, id string) error {
	resp, err := r.client.Document.Delete(ctx, opensearchapi.DocumentDeleteReq{
		Index:      r.index,
		DocumentID: id,
	})
	if err != nil {
		if isNotFound(resp, err) {
			return nil
		}
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	return nil
}

// isNotFound 404 на удаление: документа (result not_found) или индекса нет
func isNotFound(resp *opensearchapi.DocumentDeleteResp, err error) bool {
	if resp != nil {
		if raw := resp.Inspect().Response; raw != nil {
			return raw.StatusCode == http.StatusNotFound
		}
	}

	var (
		structErr *opensearchgo.StructError
		stringErr *opensearchgo.StringError
	)
	switch {
	case errors.As(err, &structErr):
		return structErr.Status == http.StatusNotFound
	case errors.As(err, &stringErr):
		return stringErr.Status == http.StatusNotFound
	}
	return false
}

// Search выполняет multi_match по title и content с ранжированием OpenSearch по умолчанию
func (r *SearchRepository) Search(ctx context.Context, query string) ([]model.NoteDocument, error) {
	docs := make([]model.NoteDocument, 0)
	if strings.TrimSpace(query) == "" {
		return docs, nil
	}

	body, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title", "content"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	resp, err := r.client.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{r.index},
		Body:    bytes.NewReader(body),
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	for _, hit := range resp.Hits.Hits {
		var doc model.NoteDocument
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, fmt.Errorf("decode hit %s: %w", hit.ID, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Ping проверяет доступность кластера
func (r *SearchRepository) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx, nil)
	return err
}
