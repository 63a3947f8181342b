package usecase

import (
	"context"
	"errors"

	"items-fixture-api/internal/catalog"
	repo "items-fixture-api/internal/catalog/repository"
)

// Detail retrieves a single Item by catalog key. Returns ErrItemNotFound
// when the key is unknown.
func (uc *implUseCase) Detail(ctx context.Context, key int) (catalog.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{Key: key})
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			return catalog.DetailItemOutput{}, catalog.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return catalog.DetailItemOutput{}, err
	}

	return catalog.DetailItemOutput{Item: item}, nil
}
