package usecase

import (
	"time"

	"levels_backend/internal/feature/analysis/domain/entity"
)

// scanLevels は有意バーの高値・安値のうち、ウィンドウ終端endまでの後続バーに
// 破られていないものをレベルとして抽出します。
//
// 判定はバーごとに独立です:
//   - 高値がレジスタンス ⇔ 日付が厳密に後のバーに High を上回るものがない
//   - 安値がサポート ⇔ 日付が厳密に後のバーに Low を下回るものがない
//
// 後続バーが存在しない（有意バーがウィンドウ末尾の）場合はどちらも成立します。
// 1本のバーがレジスタンスとサポートの両方、片方、またはどちらにもならない
// ことがあります。未突破チェックにはATRが定義された全バーが参加し、有意バー
// だけに絞ることはしません。
//
// 後続区間を候補ごとに再走査する代わりに、高値のサフィックス最大値と安値の
// サフィックス最小値を一度だけ前計算して全体O(N)で判定します。出力は再走査
// 方式と同一です。レベルは元バーの日付順で返し、日付をまたいだ重複排除や
// マージは行いません。
func scanLevels(bars []entity.AnnotatedBar, end time.Time) (resistance, support []entity.Level) {
	// 作業セット: ATRが定義され、ウィンドウ終端以前のバー
	work := make([]entity.AnnotatedBar, 0, len(bars))
	for _, b := range bars {
		if b.HasATR && !b.Time.After(end) {
			work = append(work, b)
		}
	}
	n := len(work)
	if n == 0 {
		return nil, nil
	}

	// suffixHigh[i] = work[i..n-1] の最大高値、suffixLow[i] = 最小安値
	suffixHigh := make([]float64, n)
	suffixLow := make([]float64, n)
	suffixHigh[n-1] = work[n-1].High
	suffixLow[n-1] = work[n-1].Low
	for i := n - 2; i >= 0; i-- {
		suffixHigh[i] = max(work[i].High, suffixHigh[i+1])
		suffixLow[i] = min(work[i].Low, suffixLow[i+1])
	}

	for i, b := range work {
		if !b.Significant {
			continue
		}
		if i == n-1 || suffixHigh[i+1] <= b.High {
			resistance = append(resistance, entity.Level{Time: b.Time, Price: b.High, Kind: entity.Resistance})
		}
		if i == n-1 || suffixLow[i+1] >= b.Low {
			support = append(support, entity.Level{Time: b.Time, Price: b.Low, Kind: entity.Support})
		}
	}
	return resistance, support
}
