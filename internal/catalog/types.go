package catalog

import "time"

// --- Item Domain Model ---

// Item is the catalog entity served by this module. Optional fields are
// pointers so their absence survives onto the wire as null; slice and map
// fields are never nil after the store hands them out.
type Item struct {
	ID          string
	Name        string
	Description *string
	Price       float64
	Tax         *float64
	Tags        []string
	Properties  map[string]string
	CreatedAt   *time.Time
	ValidUntil  *time.Time
	RevisedAt   []time.Time
}

// --- UseCase Inputs ---

// FilterInput carries the item ids a caller asks for.
type FilterInput struct {
	ItemIDs []string
}

// --- UseCase Outputs ---

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}
