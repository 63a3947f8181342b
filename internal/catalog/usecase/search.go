package usecase

import (
	"context"

	"items-fixture-api/internal/catalog"
)

// Search returns the items whose id appears in input.ItemIDs, keeping the
// catalog order. An empty id list yields an empty result, not the full
// catalog.
func (uc *implUseCase) Search(ctx context.Context, input catalog.FilterInput) (catalog.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}

	wanted := make(map[string]struct{}, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		wanted[id] = struct{}{}
	}

	matched := make([]catalog.Item, 0, len(wanted))
	for _, item := range items {
		if _, ok := wanted[item.ID]; ok {
			matched = append(matched, item)
		}
	}

	return catalog.ListItemsOutput{Items: matched}, nil
}
