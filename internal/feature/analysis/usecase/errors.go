// Package usecase は有意ロウソク足検出と未突破レベル走査のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrEmptyInput is returned when the loader supplied zero bars for the
	// requested window. The pipeline produces no partial output.
	ErrEmptyInput = errors.New("no bars in the requested window")

	// ErrInsufficientData is returned when the series is shorter than the
	// rolling window, so no bar ever reaches a defined ATR.
	ErrInsufficientData = errors.New("fewer bars than the ATR window requires")

	// ErrMalformedBar is returned when a bar violates the high/low ordering
	// invariant. Wrapped with the offending bar's date.
	ErrMalformedBar = errors.New("malformed bar")

	// ErrInvalidParams is returned for a non-positive window or multiplier.
	ErrInvalidParams = errors.New("invalid analysis parameters")
)
