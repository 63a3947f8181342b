package memory

import (
	"sort"

	"items-fixture-api/internal/catalog"
	"items-fixture-api/pkg/log"
)

// implRepository is an in-memory catalog.Repository. The backing map is
// filled once at construction and never written again, so reads need no
// locking.
type implRepository struct {
	l     log.Logger
	items map[int]catalog.Item
	keys  []int // sorted catalog keys, fixed at construction
}

// New creates a repository over the given seed data. Pass Seed() for the
// fixture catalog.
func New(l log.Logger, seed map[int]catalog.Item) *implRepository {
	keys := make([]int, 0, len(seed))
	for k := range seed {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return &implRepository{
		l:     l,
		items: seed,
		keys:  keys,
	}
}
