// Package pagination pages ledger listings.
package pagination

import (
	"gorm.io/gorm"
)

// Page size bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided
// and clamps page_size to MaxPageSize.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps one page of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
// Data is never nil so it encodes as [] rather than null.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
