package domain

import "errors"

var (
	ErrSareeNotFound  = errors.New("saree not found")
	ErrRegionNotFound = errors.New("region not found")
)
