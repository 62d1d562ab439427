package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"playground-service/internal/model"
	"playground-service/internal/repository"
)

var _ repository.NoteSearchRepository = (*SearchRepository)(nil)

// SearchRepository полнотекстовый индекс заметок на FTS5
type SearchRepository struct {
	db *sql.DB
}

// Index перезаписывает документ заметки: строка с тем же id удаляется и вставляется заново
func (r *SearchRepository) Index(ctx context.Context, note model.Note) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, note.ID); err != nil {
		return fmt.Errorf("delete previous document %s: %w", note.ID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notes (id, title, content) VALUES (?, ?, ?)`,
		note.ID, note.Title, note.Content,
	); err != nil {
		return fmt.Errorf("insert document %s: %w", note.ID, err)
	}

	return tx.Commit()
}

// Delete удаляет документ, отсутствие документа не является ошибкой
func (r *SearchRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	return nil
}

// Search ищет по title и content, результаты упорядочены по bm25
func (r *SearchRepository) Search(ctx context.Context, query string) ([]model.NoteDocument, error) {
	docs := make([]model.NoteDocument, 0)

	expr := matchExpression(query)
	if expr == "" {
		return docs, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content FROM notes WHERE notes MATCH ? ORDER BY rank`, expr)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc model.NoteDocument
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// matchExpression строит выражение MATCH: каждое слово запроса как префикс, слова через OR.
// В выражение попадают только буквы и цифры, поэтому синтаксис FTS5 из запроса не протекает.
func matchExpression(query string) string {
	terms := strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		parts = append(parts, `"`+term+`"*`)
	}

	return strings.Join(parts, " OR ")
}
