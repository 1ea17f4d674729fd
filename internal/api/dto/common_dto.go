package dto

// ListResponse wraps collections.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// RefSummary is an embedded {id, name} reference.
type RefSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
