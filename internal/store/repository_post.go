package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository]
// over the "posts" table.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		post     models.Post
		owner    sql.NullInt64
		category string
	)
	err := row.Scan(&post.ID, &owner, &post.Title, &post.Content, &post.Author, &category, &post.Tags, &post.Published, &post.CreatedAt, &post.UpdatedAt)
	post.UserID = owner.Int64
	post.Category = models.Category(category)
	return post, err
}

// ListPosts returns every post, newest first.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllPostsQuery()
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query for getting posts")
		return nil, p.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// GetPost returns the post with the given ID or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostByIDQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Msg("failed to create query")
		return models.Post{}, err
	}

	post, err := scanPost(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.GetPost").Int64("post_id", postID).Msg("failed to get post")
		return models.Post{}, p.wrapError(ErrExecutingQuery, err)
	}

	return post, nil
}

// CreatePost inserts post and returns the stored row.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to create query")
		return models.Post{}, err
	}

	created, err := scanPost(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Int64("user_id", post.UserID).Msg("failed to insert post")
		return models.Post{}, p.wrapError(ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdatePost overwrites the writable fields of the post identified by
// post.ID and bumps updated_at. Returns [ErrPostNotFound] when the row does
// not exist.
func (p *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("failed to create query")
		return models.Post{}, err
	}

	updated, err := scanPost(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.UpdatePost").Int64("post_id", post.ID).Msg("failed to update post")
		return models.Post{}, p.wrapError(ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeletePost removes the post with the given ID or returns [ErrPostNotFound].
func (p *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Msg("failed to create query")
		return err
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Int64("post_id", postID).Msg("failed to delete post")
		return p.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return p.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
