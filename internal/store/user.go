// Package store provides the relational persistence layer.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("store: user not found")
	// ErrDuplicate is returned when email or username is already taken.
	ErrDuplicate = errors.New("store: email or username already exists")
)

// builder uses ? placeholders for sqlite.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	email           TEXT NOT NULL UNIQUE,
	username        TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// User is the persisted user row. The password is stored as a digest only.
type User struct {
	ID             int64     `db:"id"`
	Email          string    `db:"email"`
	Username       string    `db:"username"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Open connects to the sqlite database at dsn and ensures the schema exists.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect %s: %w", dsn, err)
	}
	if _, err := db.Exec(usersSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return db, nil
}

// UserStore persists users.
type UserStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStore creates a UserStore.
func NewUserStore(db *sqlx.DB, logger *slog.Logger) *UserStore {
	return &UserStore{
		db:     db,
		logger: logger.With("component", "user_store"),
	}
}

// Create inserts a user. A uniqueness violation on email or username is
// reported as ErrDuplicate, distinct from any transport-level failure.
func (s *UserStore) Create(ctx context.Context, email, username, hashedPassword string) (*User, error) {
	query, args, err := builder.
		Insert("users").
		Columns("email", "username", "hashed_password").
		Values(email, username, hashedPassword).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("store: build insert: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("store: insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID returns the user with the given id, or ErrNotFound.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.getBy(ctx, sq.Eq{"id": id})
}

// GetByEmail returns the user with the given email, or ErrNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.getBy(ctx, sq.Eq{"email": email})
}

// GetByUsername returns the user with the given username, or ErrNotFound.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.getBy(ctx, sq.Eq{"username": username})
}

func (s *UserStore) getBy(ctx context.Context, pred sq.Eq) (*User, error) {
	query, args, err := builder.Select("*").From("users").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("store: build select: %w", err)
	}

	var u User
	if err := s.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: select user: %w", err)
	}
	return &u, nil
}

// List returns users ordered by id, honoring skip/limit pagination.
func (s *UserStore) List(ctx context.Context, skip, limit int) ([]User, error) {
	query, args, err := builder.
		Select("*").
		From("users").
		OrderBy("id").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("store: build list: %w", err)
	}

	users := []User{}
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("store: list users: %w", err)
	}
	return users, nil
}

// Update applies the non-empty fields and returns the refreshed row.
// ErrNotFound when the user does not exist; ErrDuplicate when the new email or
// username collides.
func (s *UserStore) Update(ctx context.Context, id int64, fields map[string]any) (*User, error) {
	if len(fields) == 0 {
		return s.GetByID(ctx, id)
	}

	set := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	query, args, err := builder.
		Update("users").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("store: build update: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("store: update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("store: rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(ctx, id)
}

// Delete removes the user. ErrNotFound when nothing was deleted.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	query, args, err := builder.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("store: build delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("store: delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a sqlite unique constraint error.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == sqlite3.ErrConstraint
}
