package util

import (
	"strconv"
)

// ParseUintOrZero parses an unsigned integer, returning 0 on failure.
// ParseUint reports the clamped max on range errors, so check err.
func ParseUintOrZero(s string) uint {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// ParsePagination reads page/limit with sane defaults and caps.
func ParsePagination(pageStr, limitStr string) (page, limit int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
