package contacts

import (
	"context"
	"sort"
	"sync"

	"github.com/louisbranch/contactbook/internal/storage"
)

// fakeStore is an in-memory ContactStore with optional failure injection.
type fakeStore struct {
	mu       sync.Mutex
	contacts map[string]storage.Contact
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{contacts: map[string]storage.Contact{}}
}

func (f *fakeStore) seed(contacts ...storage.Contact) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, contact := range contacts {
		f.contacts[contact.ID] = contact
	}
}

func (f *fakeStore) Insert(ctx context.Context, contact storage.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if _, exists := f.contacts[contact.ID]; exists {
		return storage.ErrAlreadyExists
	}
	f.contacts[contact.ID] = contact
	return nil
}

func (f *fakeStore) Update(ctx context.Context, id string, fields storage.ContactFields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	contact, exists := f.contacts[id]
	if !exists {
		return storage.ErrNotFound
	}
	contact.Name = fields.Name
	contact.Phone = fields.Phone
	contact.Email = fields.Email
	f.contacts[id] = contact
	return nil
}

func (f *fakeStore) DeleteByName(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for id, contact := range f.contacts {
		if contact.Name == name {
			delete(f.contacts, id)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) FindByName(ctx context.Context, name string) (storage.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return storage.Contact{}, f.failWith
	}
	for _, contact := range f.contacts {
		if contact.Name == name {
			return contact, nil
		}
	}
	return storage.Contact{}, storage.ErrNotFound
}

func (f *fakeStore) FindAll(ctx context.Context) ([]storage.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]storage.Contact, 0, len(f.contacts))
	for _, contact := range f.contacts {
		out = append(out, contact)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) Close() error { return nil }
