package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
)

const documentColumns = `id, user_id, title, type, url, COALESCE(file_size, 0),
	COALESCE(mime_type, ''), COALESCE(description, ''), uploaded_at, created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (*entity.Document, error) {
	var (
		d       entity.Document
		docType string
	)

	err := row.Scan(&d.ID, &d.UserID, &d.Title, &docType, &d.URL, &d.FileSize,
		&d.MimeType, &d.Description, &d.UploadedAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	d.Type = entity.DocumentTypeFromString(docType)

	return &d, nil
}

func (s *DB) ListDocuments(ctx context.Context, userID int64) (docs []entity.Document, err error) {
	ctx, span := s.startSpan(ctx, "ListDocuments")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := s.conn.Query(ctx, query, userID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	docs = make([]entity.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, s.mapError(err)
		}
		docs = append(docs, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return docs, nil
}

func (s *DB) GetDocument(ctx context.Context, userID, id int64) (doc *entity.Document, err error) {
	ctx, span := s.startSpan(ctx, "GetDocument")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND user_id = $2`

	doc, err = scanDocument(s.conn.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, s.mapError(err)
	}

	return doc, nil
}

func (s *DB) CreateDocument(ctx context.Context, in entity.Document) (err error) {
	ctx, span := s.startSpan(ctx, "CreateDocument")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO documents (id, user_id, title, type, url, file_size, mime_type, description, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), NULLIF($7, ''), NULLIF($8, ''), $9)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.UserID, in.Title, in.Type.String(),
		in.URL, in.FileSize, in.MimeType, in.Description, in.UploadedAt)

	return s.mapError(err)
}

func (s *DB) DeleteDocument(ctx context.Context, userID, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteDocument")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// ReplaceDocumentChunks swaps the stored extraction output for a document
// in one transaction.
func (s *DB) ReplaceDocumentChunks(ctx context.Context, documentID int64, chunks []entity.DocumentChunk) (err error) {
	ctx, span := s.startSpan(ctx, "ReplaceDocumentChunks")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return s.mapError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM document_chunks WHERE document_id = $1`, documentID); err != nil {
		return s.mapError(err)
	}

	batch := &pgx.Batch{}
	for _, c := range chunks {
		batch.Queue(`INSERT INTO document_chunks (id, document_id, chunk_id, text, embedding)
			VALUES ($1, $2, $3, $4, $5)`,
			c.ID, documentID, c.ChunkID, c.Text, c.Embedding)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
