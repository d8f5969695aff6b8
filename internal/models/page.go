package models

// Page is one slice of a filtered listing plus the total count of all
// matching records. len(Results) is at most PageSize; TotalCount is
// independent of pagination.
type Page[T any] struct {
	Results    []*T `json:"results"`
	PageNumber int  `json:"page_number"`
	PageSize   int  `json:"page_size"`
	TotalCount int  `json:"total_count"`
}
