package memory

import (
	"time"

	"items-fixture-api/internal/catalog"
)

// Seed returns the fixture catalog: the two items every schema-driven client
// test suite is written against.
func Seed() map[int]catalog.Item {
	return map[int]catalog.Item{
		1: {
			ID:    "1",
			Name:  "Portal Gun",
			Price: 42.0,
			Tags:  []string{"sci-fi"},
			RevisedAt: []time.Time{
				date(2007, time.October, 10),
				date(2022, time.December, 8),
			},
		},
		2: {
			ID:         "2",
			Name:       "Plumbus",
			Price:      32.0,
			ValidUntil: ptr(date(2999, time.January, 1)),
			Properties: map[string]string{"feeble": "schleem"},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
