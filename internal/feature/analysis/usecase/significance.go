package usecase

import "levels_backend/internal/feature/analysis/domain/entity"

// classify はATRが定義されたバーに有意フラグを付けます。
// 判定は TR > multiplier × ATR の厳密な不等号で、閾値ちょうどのバーは
// 有意になりません。ATR未定義のバーはSignificant=falseのまま残ります。
// 副作用のない純粋関数で、入力スライスをその場で更新して返します。
func classify(bars []entity.AnnotatedBar, multiplier float64) []entity.AnnotatedBar {
	for i := range bars {
		if bars[i].HasATR {
			bars[i].Significant = bars[i].TrueRange > multiplier*bars[i].ATR
		}
	}
	return bars
}

// significantOf は有意フラグの立ったバーのみを抽出します。
func significantOf(bars []entity.AnnotatedBar) []entity.AnnotatedBar {
	out := make([]entity.AnnotatedBar, 0, len(bars))
	for _, b := range bars {
		if b.Significant {
			out = append(out, b)
		}
	}
	return out
}
