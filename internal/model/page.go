package model

type PageInfo struct {
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	Total       int `json:"total"`
	LastPage    int `json:"lastPage"`
}

type PageResponse[T any] struct {
	Items []T      `json:"items"`
	Page  PageInfo `json:"page"`
}

// NewPageInfo clamps page into [1, lastPage] and reports the row offset for it.
func NewPageInfo(page int, perPage int, total int) (PageInfo, int) {
	lastPage := 1
	if total > 0 {
		lastPage = (total + perPage - 1) / perPage
	}

	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	info := PageInfo{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}

	return info, (page - 1) * perPage
}
