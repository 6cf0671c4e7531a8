package models

// Page is the envelope for every paginated response: the page of items
// plus the total count and the offset/limit that produced it.
type Page[T any] struct {
	Data   []T   `json:"data"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// NewPage builds a Page, normalizing a nil slice to an empty one so JSON
// clients always receive an array.
func NewPage[T any](data []T, total int64, offset, limit int) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{Data: data, Total: total, Offset: offset, Limit: limit}
}
