// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{Name: "Alice", Email: "a@example.com", Password: "hash", ProfileURL: "http://img"}

	query, args, err := buildInsertUserQuery(user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id")
	// placeholder format should be $n (Postgres)
	require.Contains(t, query, "$4")
	require.Equal(t, []any{"Alice", "a@example.com", "hash", "http://img"}, args)
}

func Test_buildSelectUserQueries(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery("a@example.com")
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE email = $1")
	assert.Equal(t, []any{"a@example.com"}, args)

	query, args, err = buildSelectUserByIDQuery(42)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE user_id = $1")
	assert.Equal(t, []any{int64(42)}, args)

	query, args, err = buildSelectAllUsersQuery()
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY name ASC")
	assert.Empty(t, args)
	// password hash is selected for the login flow, never returned by handlers
	assert.Contains(t, query, "password")
}

func Test_buildSelectAllPostsQuery_NewestFirst(t *testing.T) {
	query, args, err := buildSelectAllPostsQuery()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM posts")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
	assert.Empty(t, args)
}

func Test_buildInsertPostQuery(t *testing.T) {
	post := models.Post{
		UserID:    7,
		Title:     "T",
		Content:   "C",
		Author:    "A",
		Category:  models.CategoryHealth,
		Tags:      "x",
		Published: true,
	}

	query, args, err := buildInsertPostQuery(post)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO posts"))
	assert.Contains(t, query, "RETURNING id, user_id")
	// category is stored as plain text
	assert.Equal(t, []any{int64(7), "T", "C", "A", "Health", "x", true}, args)
}

func Test_buildUpdatePostQuery(t *testing.T) {
	post := models.Post{ID: 3, Title: "T", Content: "C", Author: "A", Category: models.CategoryFood, Tags: "x"}

	query, args, err := buildUpdatePostQuery(post)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE posts SET")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "WHERE id = $7")
	require.Len(t, args, 7)
	assert.Equal(t, int64(3), args[6])
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeletePostQuery(5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM posts WHERE id = $1", query)
	assert.Equal(t, []any{int64(5)}, args)

	query, args, err = buildDeleteUserQuery(6)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE user_id = $1", query)
	assert.Equal(t, []any{int64(6)}, args)
}
