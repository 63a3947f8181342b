package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"items-fixture-api/internal/catalog"
	"items-fixture-api/internal/catalog/repository"
	"items-fixture-api/internal/catalog/repository/memory"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

func TestListItems(t *testing.T) {
	repo := memory.New(nopLogger{}, memory.Seed())
	ctx := context.Background()

	items, err := repo.ListItems(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded items, got %d", len(items))
	}

	t.Run("Ordered By Key", func(t *testing.T) {
		if items[0].ID != "1" || items[1].ID != "2" {
			t.Errorf("expected ids [1 2], got [%s %s]", items[0].ID, items[1].ID)
		}
	})

	t.Run("Portal Gun Fields", func(t *testing.T) {
		got := items[0]
		if got.Name != "Portal Gun" || got.Price != 42.0 {
			t.Errorf("unexpected item 1: %+v", got)
		}
		if len(got.Tags) != 1 || got.Tags[0] != "sci-fi" {
			t.Errorf("unexpected tags: %v", got.Tags)
		}
		if len(got.RevisedAt) != 2 {
			t.Fatalf("expected 2 revision dates, got %d", len(got.RevisedAt))
		}
		want := time.Date(2007, time.October, 10, 0, 0, 0, 0, time.UTC)
		if !got.RevisedAt[0].Equal(want) {
			t.Errorf("expected first revision %v, got %v", want, got.RevisedAt[0])
		}
		if got.Description != nil || got.Tax != nil || got.ValidUntil != nil {
			t.Errorf("expected optional fields unset: %+v", got)
		}
	})

	t.Run("Plumbus Fields", func(t *testing.T) {
		got := items[1]
		if got.Name != "Plumbus" || got.Price != 32.0 {
			t.Errorf("unexpected item 2: %+v", got)
		}
		if got.Properties["feeble"] != "schleem" {
			t.Errorf("unexpected properties: %v", got.Properties)
		}
		if got.ValidUntil == nil || got.ValidUntil.Year() != 2999 {
			t.Errorf("unexpected validUntil: %v", got.ValidUntil)
		}
	})

	t.Run("Returns Copies", func(t *testing.T) {
		items[0].Tags[0] = "mutated"
		items[1].Properties["feeble"] = "mutated"

		again, err := repo.ListItems(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again[0].Tags[0] != "sci-fi" {
			t.Error("tag mutation leaked back into the store")
		}
		if again[1].Properties["feeble"] != "schleem" {
			t.Error("property mutation leaked back into the store")
		}
	})
}

func TestGetOneItem(t *testing.T) {
	repo := memory.New(nopLogger{}, memory.Seed())
	ctx := context.Background()

	t.Run("Known Key", func(t *testing.T) {
		item, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{Key: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "Plumbus" {
			t.Errorf("expected Plumbus, got %q", item.Name)
		}
	})

	t.Run("Unknown Key", func(t *testing.T) {
		_, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{Key: 42})
		if !errors.Is(err, repository.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("Empty Store", func(t *testing.T) {
		empty := memory.New(nopLogger{}, map[int]catalog.Item{})
		_, err := empty.GetOneItem(ctx, repository.GetOneItemOptions{Key: 1})
		if !errors.Is(err, repository.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}
