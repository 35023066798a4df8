package domain

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrModelUnavailable = errors.New("risk model unavailable")
	ErrEmptyDataset     = errors.New("dataset has no usable rows")
)
