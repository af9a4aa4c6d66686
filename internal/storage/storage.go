// Package storage defines the persistence contract for contact records.
//
// Implementations (bbolt document store, sqlite) live in subpackages and
// must satisfy the same ContactStore semantics; the shared contract tests
// in storagetest exercise both.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested contact record is missing.
	ErrNotFound = errors.New("contact not found")
	// ErrAlreadyExists indicates an insert collided with an existing record ID.
	ErrAlreadyExists = errors.New("contact already exists")
)

// Contact stores one contact-book record.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactFields carries the mutable fields replaced by an update.
type ContactFields struct {
	Name  string
	Phone string
	Email string
}

// ContactStore persists contact records.
//
// Name uniqueness is enforced by the validated write pipeline, not by the
// store; Insert does not reject duplicate names.
type ContactStore interface {
	Insert(ctx context.Context, contact Contact) error
	Update(ctx context.Context, id string, fields ContactFields) error
	DeleteByName(ctx context.Context, name string) error
	FindByName(ctx context.Context, name string) (Contact, error)
	FindAll(ctx context.Context) ([]Contact, error)
	Close() error
}
