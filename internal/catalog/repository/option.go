package repository

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	// Key is the integer catalog key the item is stored under.
	Key int
}
