package usecase

import (
	"items-fixture-api/internal/catalog/repository"
	"items-fixture-api/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
