// Package sqlite provides a SQLite-backed contact storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/contactbook/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/contactbook/internal/storage"
	"github.com/louisbranch/contactbook/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists contact records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite contact store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Insert inserts one contact record.
func (s *Store) Insert(ctx context.Context, contact storage.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(contact.ID) == "" {
		return fmt.Errorf("contact id is required")
	}

	createdAt := contact.CreatedAt.UTC()
	updatedAt := contact.UpdatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contacts (id, name, phone, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		contact.ID,
		contact.Name,
		contact.Phone,
		contact.Email,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of the contact with the given ID.
func (s *Store) Update(ctx context.Context, id string, fields storage.ContactFields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("contact id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE contacts SET name = ?, phone = ?, email = ?, updated_at = ? WHERE id = ?`,
		fields.Name,
		fields.Phone,
		fields.Email,
		toMillis(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByName removes the contact whose name matches.
func (s *Store) DeleteByName(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM contacts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// FindByName fetches the contact record with the matching name.
func (s *Store) FindByName(ctx context.Context, name string) (storage.Contact, error) {
	if err := ctx.Err(); err != nil {
		return storage.Contact{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Contact{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, phone, email, created_at, updated_at FROM contacts WHERE name = ?`,
		name,
	)
	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Contact{}, storage.ErrNotFound
		}
		return storage.Contact{}, fmt.Errorf("find contact by name: %w", err)
	}
	return contact, nil
}

// FindAll lists every contact record ordered by name.
func (s *Store) FindAll(ctx context.Context) ([]storage.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, phone, email, created_at, updated_at FROM contacts ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contacts := []storage.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (storage.Contact, error) {
	var (
		contact   storage.Contact
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &createdAt, &updatedAt); err != nil {
		return storage.Contact{}, err
	}
	contact.CreatedAt = fromMillis(createdAt)
	contact.UpdatedAt = fromMillis(updatedAt)
	return contact, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
