package usecase

import (
	"context"

	"items-fixture-api/internal/catalog"
)

// List returns every item in the catalog. The filter input is deliberately
// not applied: the endpoint contract is "validate the filter, return
// everything", so clients can probe request validation without caring about
// the payload they get back.
func (uc *implUseCase) List(ctx context.Context, input catalog.FilterInput) (catalog.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}

	return catalog.ListItemsOutput{Items: items}, nil
}
