package domain

// Page is one slice of a listing together with the window that selected it.
// Total is the size of the whole listing, not of Items.
type Page[T any] struct {
	Items  []T
	Limit  int
	Offset int
	Total  int64
}

// Number returns the 1-based page number of the window.
func (p Page[T]) Number() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

// TotalPages returns how many pages of Limit rows the listing spans, at least 1.
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 1
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
