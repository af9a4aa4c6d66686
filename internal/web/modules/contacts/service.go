// Package contacts implements the contact book pages and their validated
// write pipeline.
package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/contactbook/internal/id"
	"github.com/louisbranch/contactbook/internal/storage"
	"github.com/louisbranch/contactbook/internal/validate"
	apperrors "github.com/louisbranch/contactbook/internal/web/platform/errors"
)

// contactService defines the operations used by the HTTP handlers.
type contactService interface {
	list(ctx context.Context) ([]storage.Contact, error)
	get(ctx context.Context, name string) (storage.Contact, error)
	create(ctx context.Context, payload validate.Payload) (validate.Result, error)
	update(ctx context.Context, recordID string, payload validate.Payload) (validate.Result, error)
	remove(ctx context.Context, name string) error
}

type service struct {
	store storage.ContactStore
	newID func() string
	now   func() time.Time
}

func newService(store storage.ContactStore) service {
	return service{store: store, newID: id.New, now: time.Now}
}

func (s service) list(ctx context.Context) ([]storage.Contact, error) {
	contacts, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s service) get(ctx context.Context, name string) (storage.Contact, error) {
	contact, err := s.store.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Contact{}, apperrors.EK(apperrors.KindNotFound, "error.not_found", "contact not found")
		}
		return storage.Contact{}, fmt.Errorf("find contact: %w", err)
	}
	return contact, nil
}

func (s service) create(ctx context.Context, payload validate.Payload) (validate.Result, error) {
	result, err := validate.Check(ctx, s.store, payload)
	if err != nil {
		return validate.Result{}, fmt.Errorf("validate contact: %w", err)
	}
	if !result.OK() {
		return result, nil
	}

	now := s.now().UTC()
	contact := storage.Contact{
		ID:        s.newID(),
		Name:      payload.Name,
		Phone:     payload.Phone,
		Email:     payload.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Insert(ctx, contact); err != nil {
		return validate.Result{}, fmt.Errorf("insert contact: %w", err)
	}
	return result, nil
}

func (s service) update(ctx context.Context, recordID string, payload validate.Payload) (validate.Result, error) {
	if strings.TrimSpace(recordID) == "" {
		return validate.Result{}, apperrors.EK(apperrors.KindInvalidInput, "contact.error.invalid_submission", "contact id is required")
	}

	result, err := validate.Check(ctx, s.store, payload)
	if err != nil {
		return validate.Result{}, fmt.Errorf("validate contact: %w", err)
	}
	if !result.OK() {
		return result, nil
	}

	fields := storage.ContactFields{
		Name:  payload.Name,
		Phone: payload.Phone,
		Email: payload.Email,
	}
	if err := s.store.Update(ctx, recordID, fields); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return validate.Result{}, apperrors.EK(apperrors.KindNotFound, "error.not_found", "contact not found")
		}
		return validate.Result{}, fmt.Errorf("update contact: %w", err)
	}
	return result, nil
}

// remove deletes by name. A missing record is not an error: the submission
// came from a page that may be stale, and the end state is the same.
func (s service) remove(ctx context.Context, name string) error {
	if err := s.store.DeleteByName(ctx, strings.TrimSpace(name)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
