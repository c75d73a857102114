package usecase

import (
	"fmt"

	"levels_backend/internal/feature/analysis/domain/entity"
)

// trueRange は1本分のトゥルーレンジを返します。
// TR = max(高値-安値, |高値-前日終値|, |安値-前日終値|)。
func trueRange(b entity.Bar, prevClose float64) float64 {
	tr := b.High - b.Low
	if d := abs(b.High - prevClose); d > tr {
		tr = d
	}
	if d := abs(b.Low - prevClose); d > tr {
		tr = d
	}
	return tr
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// annotate は各バーのトゥルーレンジと、windowSize本の単純移動平均によるATRを計算します。
//
//   - 先頭バーは前日終値が存在しないため、TRは高値-安値のみで定義します。
//   - ATRはインデックス windowSize-1 以降でのみ定義されます（HasATR=true）。
//     各インデックスで独立に再計算し、逐次更新による誤差を持ち込みません。
//   - バーの検証もここで行い、OHLC順序の壊れたバーはErrMalformedBarとして
//     即座に失敗させます（計算を続けるとTRが汚染されるため）。
//
// シリーズがwindowSize本に満たない場合、ATRが定義されるバーが1本も存在しない
// ため、ErrInsufficientDataを返しAnnotatedBarは一切生成しません。
func annotate(bars []entity.Bar, windowSize int) ([]entity.AnnotatedBar, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size %d", ErrInvalidParams, windowSize)
	}
	if len(bars) == 0 {
		return nil, ErrEmptyInput
	}
	if len(bars) < windowSize {
		return nil, fmt.Errorf("%w: got %d bars, window %d", ErrInsufficientData, len(bars), windowSize)
	}

	out := make([]entity.AnnotatedBar, len(bars))
	for i, b := range bars {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w at %s: %v", ErrMalformedBar, b.Time.Format("2006-01-02"), err)
		}

		tr := b.High - b.Low
		if i > 0 {
			tr = trueRange(b, bars[i-1].Close)
		}
		out[i] = entity.AnnotatedBar{Bar: b, TrueRange: tr}
	}

	for i := windowSize - 1; i < len(out); i++ {
		sum := 0.0
		for j := i - windowSize + 1; j <= i; j++ {
			sum += out[j].TrueRange
		}
		out[i].ATR = sum / float64(windowSize)
		out[i].HasATR = true
	}

	return out, nil
}
