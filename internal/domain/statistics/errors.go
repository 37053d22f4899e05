package statistics

import "errors"

var (
	ErrInvalidCount = errors.New("count must be a non-negative base-10 integer")
)
