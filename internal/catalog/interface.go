package catalog

import "context"

// UseCase is the catalog business surface consumed by the delivery layer.
type UseCase interface {
	// List returns the whole catalog. The filter is accepted and validated
	// but not applied; clients exercising request validation send arbitrary
	// id lists and still expect every item back.
	List(ctx context.Context, input FilterInput) (ListItemsOutput, error)

	// Search returns only the items whose id appears in input.ItemIDs.
	// An empty id list matches nothing.
	Search(ctx context.Context, input FilterInput) (ListItemsOutput, error)

	// Detail returns the item stored under the given catalog key.
	// Returns ErrItemNotFound when the key is unknown.
	Detail(ctx context.Context, key int) (DetailItemOutput, error)
}
