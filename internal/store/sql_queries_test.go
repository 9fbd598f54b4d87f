// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/migrations"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func builderDB(dialect migrations.Dialect) *DB {
	return newDB(nil, dialect, logger.Nop())
}

func TestBuildInsertUserQuery(t *testing.T) {
	user := models.User{Email: "vlad@gmail.com", Hash: "hash", FirstName: strPtr("Vlad")}

	tests := []struct {
		name    string
		dialect migrations.Dialect
		want    string
	}{
		{
			name:    "postgres",
			dialect: migrations.DialectPostgres,
			want:    "INSERT INTO users (email,hash,first_name,last_name) VALUES ($1,$2,$3,$4) RETURNING id",
		},
		{
			name:    "sqlite",
			dialect: migrations.DialectSQLite,
			want:    "INSERT INTO users (email,hash,first_name,last_name) VALUES (?,?,?,?) RETURNING id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := builderDB(tt.dialect).buildInsertUserQuery(user)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			require.Len(t, args, 4)
			assert.Equal(t, "vlad@gmail.com", args[0])
			assert.Equal(t, "hash", args[1])
		})
	}
}

func TestBuildSelectUserQuery(t *testing.T) {
	query, args, err := builderDB(migrations.DialectPostgres).buildSelectUserQuery(sq.Eq{"email": "vlad@gmail.com"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, created_at, updated_at, email, hash, first_name, last_name FROM users WHERE email = $1", query)
	assert.Equal(t, []any{"vlad@gmail.com"}, args)
}

func TestBuildUpdateUserQuery(t *testing.T) {
	tests := []struct {
		name     string
		update   models.UserUpdate
		want     string
		wantArgs []any
	}{
		{
			name:     "single field",
			update:   models.UserUpdate{FirstName: models.NewNullableString(strPtr("Vladimir"))},
			want:     "UPDATE users SET first_name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
			wantArgs: []any{"Vladimir", int64(7)},
		},
		{
			name:     "all fields",
			update:   models.UserUpdate{FirstName: models.NewNullableString(strPtr("A")), LastName: models.NewNullableString(strPtr("B")), Email: strPtr("c@d.ef")},
			want:     "UPDATE users SET first_name = $1, last_name = $2, email = $3, updated_at = CURRENT_TIMESTAMP WHERE id = $4",
			wantArgs: []any{"A", "B", "c@d.ef", int64(7)},
		},
		{
			name:     "null clears name",
			update:   models.UserUpdate{LastName: models.NewNullableString(nil)},
			want:     "UPDATE users SET last_name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
			wantArgs: []any{nil, int64(7)},
		},
		{
			name:     "empty update bumps timestamp only",
			update:   models.UserUpdate{},
			want:     "UPDATE users SET updated_at = CURRENT_TIMESTAMP WHERE id = $1",
			wantArgs: []any{int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := builderDB(migrations.DialectPostgres).buildUpdateUserQuery(7, tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildSelectBookmarksQuery(t *testing.T) {
	const selectBookmarks = "SELECT id, created_at, updated_at, title, description, link, user_id FROM bookmarks"

	tests := []struct {
		name       string
		dialect    migrations.Dialect
		userID     int64
		bookmarkID int64
		want       string
		wantArgs   []any
	}{
		{
			name:     "by owner",
			dialect:  migrations.DialectPostgres,
			userID:   3,
			want:     selectBookmarks + " WHERE user_id = $1 ORDER BY id ASC",
			wantArgs: []any{int64(3)},
		},
		{
			name:       "by id and owner",
			dialect:    migrations.DialectPostgres,
			userID:     3,
			bookmarkID: 9,
			want:       selectBookmarks + " WHERE id = $1 AND user_id = $2 ORDER BY id ASC",
			wantArgs:   []any{int64(9), int64(3)},
		},
		{
			name:       "by id only",
			dialect:    migrations.DialectSQLite,
			bookmarkID: 9,
			want:       selectBookmarks + " WHERE id = ? ORDER BY id ASC",
			wantArgs:   []any{int64(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := builderDB(tt.dialect).buildSelectBookmarksQuery(tt.userID, tt.bookmarkID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateBookmarkQuery(t *testing.T) {
	update := models.BookmarkUpdate{Title: strPtr("New"), Link: strPtr("https://go.dev")}

	query, args, err := builderDB(migrations.DialectPostgres).buildUpdateBookmarkQuery(3, 9, update)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE bookmarks SET title = $1, link = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3 AND user_id = $4", query)
	assert.Equal(t, []any{"New", "https://go.dev", int64(9), int64(3)}, args)
}

func TestBuildUpdateBookmarkQuery_ClearDescription(t *testing.T) {
	update := models.BookmarkUpdate{Description: models.NewNullableString(nil)}

	query, args, err := builderDB(migrations.DialectSQLite).buildUpdateBookmarkQuery(3, 9, update)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE bookmarks SET description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{nil, int64(9), int64(3)}, args)
}

func TestBuildInsertAndDeleteBookmarkQuery(t *testing.T) {
	db := builderDB(migrations.DialectSQLite)

	query, args, err := db.buildInsertBookmarkQuery(models.Bookmark{Title: "T", Link: "L", UserID: 3})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bookmarks (title,description,link,user_id) VALUES (?,?,?,?) RETURNING id", query)
	assert.Len(t, args, 4)

	query, args, err = db.buildDeleteBookmarkQuery(3, 9)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookmarks WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{int64(9), int64(3)}, args)
}
