package repository

import (
	"context"

	"items-fixture-api/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	// ListItems returns every item ordered by catalog key.
	ListItems(ctx context.Context) ([]catalog.Item, error)

	// GetOneItem fetches a single item. Returns ErrItemNotFound when no
	// item matches the options.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (catalog.Item, error)
}
