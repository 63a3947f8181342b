package memory

import (
	"context"
	"maps"
	"slices"

	"items-fixture-api/internal/catalog"
	"items-fixture-api/internal/catalog/repository"
)

// ListItems returns every item ordered by catalog key.
func (r *implRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(r.keys))
	for _, k := range r.keys {
		items = append(items, cloneItem(r.items[k]))
	}
	return items, nil
}

// GetOneItem fetches the item stored under opt.Key.
func (r *implRepository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (catalog.Item, error) {
	item, ok := r.items[opt.Key]
	if !ok {
		return catalog.Item{}, repository.ErrItemNotFound
	}
	return cloneItem(item), nil
}

// cloneItem detaches the returned item from the store so callers can never
// mutate the seed through an aliased slice or map.
func cloneItem(item catalog.Item) catalog.Item {
	out := item
	out.Tags = slices.Clone(item.Tags)
	out.RevisedAt = slices.Clone(item.RevisedAt)
	out.Properties = maps.Clone(item.Properties)

	if item.Description != nil {
		out.Description = ptr(*item.Description)
	}
	if item.Tax != nil {
		out.Tax = ptr(*item.Tax)
	}
	if item.CreatedAt != nil {
		out.CreatedAt = ptr(*item.CreatedAt)
	}
	if item.ValidUntil != nil {
		out.ValidUntil = ptr(*item.ValidUntil)
	}
	return out
}
