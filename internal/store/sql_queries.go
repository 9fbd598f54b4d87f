// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bookmark-keeper/models"
)

var (
	userColumns     = []string{"id", "created_at", "updated_at", "email", "hash", "first_name", "last_name"}
	bookmarkColumns = []string{"id", "created_at", "updated_at", "title", "description", "link", "user_id"}
)

// currentTimestamp is portable between PostgreSQL and SQLite.
var currentTimestamp = sq.Expr("CURRENT_TIMESTAMP")

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(user.TableName()).
		Columns("email", "hash", "first_name", "last_name").
		Values(user.Email, user.Hash, user.FirstName, user.LastName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// nullableArg binds an explicit null as SQL NULL.
func nullableArg(field models.NullableString) any {
	if field.Value == nil {
		return nil
	}
	return *field.Value
}

// buildUpdateUserQuery sets only the provided fields of update and always
// bumps updated_at.
func (db *DB) buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	builder := db.builder.Update(models.User{}.TableName())

	if update.FirstName.Set {
		builder = builder.Set("first_name", nullableArg(update.FirstName))
	}
	if update.LastName.Set {
		builder = builder.Set("last_name", nullableArg(update.LastName))
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	query, args, err := builder.
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertBookmarkQuery(bookmark models.Bookmark) (string, []any, error) {
	query, args, err := db.builder.
		Insert(bookmark.TableName()).
		Columns("title", "description", "link", "user_id").
		Values(bookmark.Title, bookmark.Description, bookmark.Link, bookmark.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectBookmarksQuery filters bookmarks by bookmarkID and/or userID.
// A zero value leaves the corresponding filter out. Results are ordered by id.
func (db *DB) buildSelectBookmarksQuery(userID, bookmarkID int64) (string, []any, error) {
	builder := db.builder.
		Select(bookmarkColumns...).
		From(models.Bookmark{}.TableName())

	if bookmarkID != 0 {
		builder = builder.Where(sq.Eq{"id": bookmarkID})
	}
	if userID != 0 {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}

	query, args, err := builder.OrderBy("id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildUpdateBookmarkQuery(userID, bookmarkID int64, update models.BookmarkUpdate) (string, []any, error) {
	builder := db.builder.Update(models.Bookmark{}.TableName())

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description.Set {
		builder = builder.Set("description", nullableArg(update.Description))
	}
	if update.Link != nil {
		builder = builder.Set("link", *update.Link)
	}

	query, args, err := builder.
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": bookmarkID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteBookmarkQuery(userID, bookmarkID int64) (string, []any, error) {
	query, args, err := db.builder.
		Delete(models.Bookmark{}.TableName()).
		Where(sq.Eq{"id": bookmarkID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Email,
		&user.Hash,
		&user.FirstName,
		&user.LastName,
	)
}

func scanBookmark(row rowScanner, bookmark *models.Bookmark) error {
	return row.Scan(
		&bookmark.ID,
		&bookmark.CreatedAt,
		&bookmark.UpdatedAt,
		&bookmark.Title,
		&bookmark.Description,
		&bookmark.Link,
		&bookmark.UserID,
	)
}
