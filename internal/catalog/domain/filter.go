package domain

import (
	"strconv"
	"strings"
)

// Filter defaults. Malformed input never errors; the permissive defaults are
// the documented contract.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// RawFilter carries the string-typed query parameters of a catalog listing
// request before normalization.
type RawFilter struct {
	RegionID       string
	Type           string
	Fabric         string
	BargainAllowed string
	Search         string
	MinPrice       string
	MaxPrice       string
	Page           string
	Limit          string
}

// Normalize converts raw query parameters into a validated SareeFilter.
// Non-numeric page/limit values and non-positive values are replaced by the
// defaults; non-numeric price bounds are dropped; the bargain flag is only
// set for the literal strings "true" and "false".
func (r RawFilter) Normalize() SareeFilter {
	f := SareeFilter{
		RegionID: r.RegionID,
		Type:     r.Type,
		Fabric:   r.Fabric,
		Search:   r.Search,
		Page:     DefaultPage,
		Limit:    DefaultLimit,
	}

	if page, err := strconv.Atoi(r.Page); err == nil && page >= 1 {
		f.Page = page
	}
	if limit, err := strconv.Atoi(r.Limit); err == nil && limit > 0 {
		f.Limit = limit
	}
	if min, err := strconv.ParseInt(r.MinPrice, 10, 64); err == nil {
		f.MinPrice = &min
	}
	if max, err := strconv.ParseInt(r.MaxPrice, 10, 64); err == nil {
		f.MaxPrice = &max
	}
	switch r.BargainAllowed {
	case "true":
		t := true
		f.BargainAllowed = &t
	case "false":
		fa := false
		f.BargainAllowed = &fa
	}

	return f
}

// SareeFilter is the normalized, request-scoped filter criteria. It is
// applied identically to the persistent store and the sample dataset.
type SareeFilter struct {
	RegionID       string
	Type           string
	Fabric         string
	Search         string
	BargainAllowed *bool
	MinPrice       *int64
	MaxPrice       *int64
	Page           int
	Limit          int
}

// Skip returns the pagination offset for the filter's window
func (f SareeFilter) Skip() int {
	return (f.Page - 1) * f.Limit
}

// Matches reports whether a saree satisfies every criterion of the filter.
// Text criteria match case-insensitive substrings; search matches title,
// type or characteristics.
func (f SareeFilter) Matches(s *Saree) bool {
	if f.RegionID != "" && s.RegionID != f.RegionID {
		return false
	}
	if f.Type != "" && !containsFold(s.Type, f.Type) {
		return false
	}
	if f.Fabric != "" && !containsFold(s.Fabric, f.Fabric) {
		return false
	}
	if f.BargainAllowed != nil && s.IsBargainAllowed != *f.BargainAllowed {
		return false
	}
	if f.Search != "" &&
		!containsFold(s.Title, f.Search) &&
		!containsFold(s.Type, f.Search) &&
		!containsFold(s.Characteristics, f.Search) {
		return false
	}
	if f.MinPrice != nil && s.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && s.Price > *f.MaxPrice {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Pagination describes the window of a listing response
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the pagination block for a result set.
// TotalPages is ceil(total/limit); the filter normalization guarantees
// limit >= 1.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
