package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"user_id", "name", "email", "password", "profile_url", "created_at", "updated_at"}
	postColumns = []string{"id", "user_id", "title", "content", "author", "category", "tags", "published", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildQuery(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ──

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return buildQuery(psql.Insert(models.User{}.TableName()).
		Columns("name", "email", "password", "profile_url").
		Values(user.Name, user.Email, user.Password, user.ProfileURL).
		Suffix(returning(userColumns)))
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return buildQuery(psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}))
}

func buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return buildQuery(psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}))
}

func buildSelectAllUsersQuery() (string, []any, error) {
	return buildQuery(psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("name ASC", "user_id ASC"))
}

func buildDeleteUserQuery(userID int64) (string, []any, error) {
	return buildQuery(psql.Delete(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}))
}

// ── posts ──

func buildSelectAllPostsQuery() (string, []any, error) {
	return buildQuery(psql.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at DESC", "id DESC"))
}

func buildSelectPostByIDQuery(postID int64) (string, []any, error) {
	return buildQuery(psql.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}))
}

func buildInsertPostQuery(post models.Post) (string, []any, error) {
	return buildQuery(psql.Insert(models.Post{}.TableName()).
		Columns("user_id", "title", "content", "author", "category", "tags", "published").
		Values(post.UserID, post.Title, post.Content, post.Author, string(post.Category), post.Tags, post.Published).
		Suffix(returning(postColumns)))
}

func buildUpdatePostQuery(post models.Post) (string, []any, error) {
	return buildQuery(psql.Update(models.Post{}.TableName()).
		SetMap(map[string]any{
			"title":     post.Title,
			"content":   post.Content,
			"author":    post.Author,
			"category":  string(post.Category),
			"tags":      post.Tags,
			"published": post.Published,
		}).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": post.ID}).
		Suffix(returning(postColumns)))
}

func buildDeletePostQuery(postID int64) (string, []any, error) {
	return buildQuery(psql.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}))
}
