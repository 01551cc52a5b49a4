package request

type PaginatedRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1,max=1000"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PageSize < 1 {
		return 10
	}
	if p.PageSize > 1000 {
		return 1000
	}
	return p.PageSize
}
