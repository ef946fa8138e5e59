package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sentiment_pipeline/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// Upsert inserts a post or, when post_id is already known, refreshes
// ingested_at only. Content, author and created_at never change after
// the first insert, which is what makes redelivered messages safe.
func (s *PostStore) Upsert(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (post_id, source, content, author, created_at, ingested_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (post_id) DO UPDATE SET
			ingested_at = NOW()`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query,
		post.PostID,
		post.Source,
		post.Content,
		post.Author,
		post.CreatedAt,
	)
	return err
}
