package usecase

import "errors"

// ErrSymbolNotFound is returned when no symbol matches the given criteria.
var ErrSymbolNotFound = errors.New("symbol not found")
