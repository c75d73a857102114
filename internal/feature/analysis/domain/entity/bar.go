// Package entity defines the domain models for the analysis feature.
package entity

import (
	"fmt"
	"time"
)

// Bar represents one trading day of OHLCV data for a single symbol.
// Time carries the calendar date only (UTC midnight); bars are immutable
// once produced by the loader.
type Bar struct {
	Time   time.Time // Calendar date of the trading day
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// Validate checks the OHLC ordering invariant (high is the maximum of the
// four prices, low the minimum, all positive). A violating bar would corrupt
// the true-range calculation, so it must be rejected before analysis.
func (b Bar) Validate() error {
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return fmt.Errorf("non-positive price (open=%v high=%v low=%v close=%v)", b.Open, b.High, b.Low, b.Close)
	}
	if b.High < b.Low || b.High < b.Open || b.High < b.Close || b.Low > b.Open || b.Low > b.Close {
		return fmt.Errorf("broken high/low ordering (open=%v high=%v low=%v close=%v)", b.Open, b.High, b.Low, b.Close)
	}
	if b.Volume < 0 {
		return fmt.Errorf("negative volume %d", b.Volume)
	}
	return nil
}

// AnnotatedBar is a Bar augmented with the derived volatility fields.
// ATR is only meaningful when HasATR is true (the first windowSize-1 bars
// of a series never accumulate a full window); Significant is only
// meaningful where HasATR is true. Derived fields are computed once and
// never mutated afterward.
type AnnotatedBar struct {
	Bar
	TrueRange   float64 // Single-bar true range (always computed)
	ATR         float64 // Trailing average true range over the window
	HasATR      bool    // Whether ATR is defined at this index
	Significant bool    // TrueRange > multiplier * ATR (strict)
}

// LevelKind distinguishes the two kinds of unbroken price levels.
type LevelKind string

const (
	// Resistance is a significant bar's high that no later bar exceeded.
	Resistance LevelKind = "resistance"
	// Support is a significant bar's low that no later bar undercut.
	Support LevelKind = "support"
)

// Level is an unbroken price level taken from a significant bar.
// It is only meaningful for the series and window it was computed from.
type Level struct {
	Time  time.Time // Date of the origin bar
	Price float64   // The bar's high (resistance) or low (support)
	Kind  LevelKind
}
