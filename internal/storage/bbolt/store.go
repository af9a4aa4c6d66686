// Package bbolt provides a BoltDB-backed contact document store.
package bbolt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/louisbranch/contactbook/internal/storage"
	"go.etcd.io/bbolt"
)

const contactBucket = "contact"

// Store provides a BoltDB-backed contact store. Records are stored as JSON
// documents keyed by contact ID.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert persists a new contact record.
func (s *Store) Insert(ctx context.Context, contact storage.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(contact.ID) == "" {
		return fmt.Errorf("contact id is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(contactBucket))
		if bucket == nil {
			return fmt.Errorf("contact bucket is missing")
		}
		if bucket.Get(contactKey(contact.ID)) != nil {
			return storage.ErrAlreadyExists
		}
		payload, err := json.Marshal(contact)
		if err != nil {
			return fmt.Errorf("marshal contact: %w", err)
		}
		return bucket.Put(contactKey(contact.ID), payload)
	})
}

// Update replaces the mutable fields of the contact with the given ID.
func (s *Store) Update(ctx context.Context, id string, fields storage.ContactFields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("contact id is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(contactBucket))
		if bucket == nil {
			return fmt.Errorf("contact bucket is missing")
		}
		payload := bucket.Get(contactKey(id))
		if payload == nil {
			return storage.ErrNotFound
		}
		var contact storage.Contact
		if err := json.Unmarshal(payload, &contact); err != nil {
			return fmt.Errorf("unmarshal contact: %w", err)
		}
		contact.Name = fields.Name
		contact.Phone = fields.Phone
		contact.Email = fields.Email
		contact.UpdatedAt = time.Now().UTC()
		updated, err := json.Marshal(contact)
		if err != nil {
			return fmt.Errorf("marshal contact: %w", err)
		}
		return bucket.Put(contactKey(id), updated)
	})
}

// DeleteByName removes the contact whose name matches. At most one record is
// affected; storage.ErrNotFound reports a miss.
func (s *Store) DeleteByName(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(contactBucket))
		if bucket == nil {
			return fmt.Errorf("contact bucket is missing")
		}
		key, _, err := findByNameInBucket(bucket, name)
		if err != nil {
			return err
		}
		return bucket.Delete(key)
	})
}

// FindByName fetches the contact record with the matching name.
func (s *Store) FindByName(ctx context.Context, name string) (storage.Contact, error) {
	if err := ctx.Err(); err != nil {
		return storage.Contact{}, err
	}
	if s == nil || s.db == nil {
		return storage.Contact{}, fmt.Errorf("storage is not configured")
	}

	var contact storage.Contact
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(contactBucket))
		if bucket == nil {
			return fmt.Errorf("contact bucket is missing")
		}
		_, found, err := findByNameInBucket(bucket, name)
		if err != nil {
			return err
		}
		contact = found
		return nil
	})
	if err != nil {
		return storage.Contact{}, err
	}
	return contact, nil
}

// FindAll lists every contact record ordered by name.
func (s *Store) FindAll(ctx context.Context) ([]storage.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	contacts := []storage.Contact{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(contactBucket))
		if bucket == nil {
			return fmt.Errorf("contact bucket is missing")
		}
		return bucket.ForEach(func(_, payload []byte) error {
			var contact storage.Contact
			if err := json.Unmarshal(payload, &contact); err != nil {
				return fmt.Errorf("unmarshal contact: %w", err)
			}
			contacts = append(contacts, contact)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Name < contacts[j].Name
	})
	return contacts, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(contactBucket))
		if err != nil {
			return fmt.Errorf("create contact bucket: %w", err)
		}
		return nil
	})
}

// findByNameInBucket scans documents for a matching name. The collection is a
// phone book, not a queue; a full scan is fine at this scale.
func findByNameInBucket(bucket *bbolt.Bucket, name string) ([]byte, storage.Contact, error) {
	var (
		matchKey []byte
		match    storage.Contact
		found    bool
	)
	err := bucket.ForEach(func(key, payload []byte) error {
		if found {
			return nil
		}
		var contact storage.Contact
		if err := json.Unmarshal(payload, &contact); err != nil {
			return fmt.Errorf("unmarshal contact: %w", err)
		}
		if contact.Name == name {
			matchKey = bytes.Clone(key)
			match = contact
			found = true
		}
		return nil
	})
	if err != nil {
		return nil, storage.Contact{}, err
	}
	if !found {
		return nil, storage.Contact{}, storage.ErrNotFound
	}
	return matchKey, match, nil
}

func contactKey(id string) []byte {
	return []byte(id)
}
