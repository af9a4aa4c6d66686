// Package storagetest exercises the ContactStore contract against a driver.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/contactbook/internal/storage"
)

// Factory opens a fresh, empty store for one test.
type Factory func(t *testing.T) storage.ContactStore

func seedContact(id, name string) storage.Contact {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return storage.Contact{
		ID:        id,
		Name:      name,
		Phone:     "081234567890",
		Email:     name + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Run executes the shared ContactStore contract tests.
func Run(t *testing.T, open Factory) {
	t.Run("InsertAndFindByName", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		want := seedContact("id-1", "Alice")
		if err := store.Insert(ctx, want); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}

		got, err := store.FindByName(ctx, "Alice")
		if err != nil {
			t.Fatalf("FindByName() error = %v", err)
		}
		if got.ID != want.ID || got.Name != want.Name || got.Phone != want.Phone || got.Email != want.Email {
			t.Fatalf("FindByName() = %+v, want %+v", got, want)
		}
	})

	t.Run("InsertRejectsDuplicateID", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		if err := store.Insert(ctx, seedContact("id-1", "Alice")); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		err := store.Insert(ctx, seedContact("id-1", "Bob"))
		if !errors.Is(err, storage.ErrAlreadyExists) {
			t.Fatalf("Insert() duplicate id error = %v, want ErrAlreadyExists", err)
		}
	})

	t.Run("FindByNameMiss", func(t *testing.T) {
		store := open(t)

		_, err := store.FindByName(context.Background(), "Nobody")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("FindByName() miss error = %v, want ErrNotFound", err)
		}
	})

	t.Run("UpdateReplacesMutableFields", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		if err := store.Insert(ctx, seedContact("id-1", "Alice")); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		fields := storage.ContactFields{Name: "Alicia", Phone: "081298765432", Email: "alicia@example.com"}
		if err := store.Update(ctx, "id-1", fields); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		got, err := store.FindByName(ctx, "Alicia")
		if err != nil {
			t.Fatalf("FindByName() after update error = %v", err)
		}
		if got.Phone != fields.Phone || got.Email != fields.Email {
			t.Fatalf("updated contact = %+v, want fields %+v", got, fields)
		}
		if _, err := store.FindByName(ctx, "Alice"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("old name still resolves after rename, error = %v", err)
		}
	})

	t.Run("UpdateUnknownIDReportsNotFound", func(t *testing.T) {
		store := open(t)

		err := store.Update(context.Background(), "missing", storage.ContactFields{Name: "X"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Update() unknown id error = %v, want ErrNotFound", err)
		}
	})

	t.Run("DeleteByName", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		if err := store.Insert(ctx, seedContact("id-1", "Alice")); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if err := store.DeleteByName(ctx, "Alice"); err != nil {
			t.Fatalf("DeleteByName() error = %v", err)
		}
		if _, err := store.FindByName(ctx, "Alice"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("contact still resolves after delete, error = %v", err)
		}
	})

	t.Run("DeleteUnknownNameReportsNotFound", func(t *testing.T) {
		store := open(t)

		err := store.DeleteByName(context.Background(), "Nobody")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("DeleteByName() unknown name error = %v, want ErrNotFound", err)
		}
	})

	t.Run("FindAllOrdersByName", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		for _, name := range []string{"Cara", "Alice", "Bob"} {
			contact := seedContact("id-"+name, name)
			if err := store.Insert(ctx, contact); err != nil {
				t.Fatalf("Insert(%s) error = %v", name, err)
			}
		}

		contacts, err := store.FindAll(ctx)
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(contacts) != 3 {
			t.Fatalf("len(FindAll()) = %d, want 3", len(contacts))
		}
		for i, want := range []string{"Alice", "Bob", "Cara"} {
			if contacts[i].Name != want {
				t.Fatalf("FindAll()[%d].Name = %q, want %q", i, contacts[i].Name, want)
			}
		}
	})

	t.Run("FindAllEmpty", func(t *testing.T) {
		store := open(t)

		contacts, err := store.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(contacts) != 0 {
			t.Fatalf("len(FindAll()) = %d, want 0", len(contacts))
		}
	})

	t.Run("CanceledContextIsHonored", func(t *testing.T) {
		store := open(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := store.Insert(ctx, seedContact("id-1", "Alice")); !errors.Is(err, context.Canceled) {
			t.Fatalf("Insert() canceled ctx error = %v, want context.Canceled", err)
		}
		if _, err := store.FindAll(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("FindAll() canceled ctx error = %v, want context.Canceled", err)
		}
	})
}
