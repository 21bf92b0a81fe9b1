package models

// Pagination describes one page of a listing.
// swagger:model Pagination
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes page counters for total items.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Search string
	Page   int
	Limit  int
}

// Stats is the admin dashboard summary.
// swagger:model Stats
type Stats struct {
	Users       int64      `json:"users"`
	Listings    int64      `json:"listings"`
	Equipment   int64      `json:"equipment"`
	Rules       int64      `json:"rules"`
	RecentUsers []UserView `json:"recentUsers"`
}
