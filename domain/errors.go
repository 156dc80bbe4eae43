package domain

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidDate       = errors.New("invalid date, expected DD-MM-YYYY")
)
