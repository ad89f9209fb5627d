package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/F1oxyz/coffe-cat-cop/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Postgres keeps every collection in a single documents table with a JSONB
// payload and a server-assigned created_at.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, collection, key string, doc Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO documents (collection, key, doc) VALUES ($1, $2, $3)",
		collection, key, payload,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert document",
			zap.String("collection", collection),
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *Postgres) Add(ctx context.Context, collection string, doc Document) (Record, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return Record{}, fmt.Errorf("encode document: %w", err)
	}

	key := uuid.NewString()

	var createdAt time.Time
	err = s.db.QueryRowContext(ctx,
		"INSERT INTO documents (collection, key, doc) VALUES ($1, $2, $3) RETURNING created_at",
		collection, key, payload,
	).Scan(&createdAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert document",
			zap.String("collection", collection),
			zap.String("key", key),
			zap.Error(err),
		)
		return Record{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return Record{Key: key, Doc: doc, CreatedAt: createdAt}, nil
}

func (s *Postgres) Get(ctx context.Context, collection, key string) (Record, error) {
	var (
		payload   []byte
		createdAt time.Time
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT doc, created_at FROM documents WHERE collection = $1 AND key = $2",
		collection, key,
	).Scan(&payload, &createdAt)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Record{}, fmt.Errorf("decode document %s/%s: %w", collection, key, err)
	}

	return Record{Key: key, Doc: doc, CreatedAt: createdAt}, nil
}

func (s *Postgres) List(ctx context.Context, collection string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, doc, created_at FROM documents WHERE collection = $1 ORDER BY created_at, key",
		collection,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list documents",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec     Record
			payload []byte
		)
		if err := rows.Scan(&rec.Key, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if err := json.Unmarshal(payload, &rec.Doc); err != nil {
			return nil, fmt.Errorf("decode document %s/%s: %w", collection, rec.Key, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return records, nil
}

func (s *Postgres) Delete(ctx context.Context, collection, key string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = $1 AND key = $2",
		collection, key,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
