package helpers

import "github.com/emrekoc/studentdesk/internal/app/models/dto"

const (
	// DefaultLimit applies when a listing request names no page size
	DefaultLimit = 50
	// MaxLimit caps a single listing page
	MaxLimit = 200
)

// NormalizeLimitOffset clamps raw query paging values to safe bounds.
// A zero or negative limit falls back to the default; a negative
// offset becomes zero.
func NormalizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// NewPaginationInfo describes the page a listing response covers
func NewPaginationInfo(limit, offset, count int) dto.PaginationInfo {
	return dto.PaginationInfo{
		Limit:  limit,
		Offset: offset,
		Count:  count,
	}
}
