package usecase

import (
	"context"
	"time"

	"levels_backend/internal/feature/analysis/domain/entity"
	candleentity "levels_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultWindowSize はATRの移動平均ウィンドウのデフォルト本数です。
	DefaultWindowSize = 14
	// DefaultMultiplier は有意判定のデフォルト倍率（TR > 倍率×ATR）です。
	DefaultMultiplier = 1.2
	// DefaultLookbackDays は分析ウィンドウの遡り日数です。
	DefaultLookbackDays = 60
	// AnalysisInterval は分析対象の時間足です。日足のみを扱います。
	AnalysisInterval = "1day"
)

// BarRepository は分析対象の日足シリーズの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BarRepository interface {
	// FindRange は指定範囲のロウソク足を日付昇順で返します。
	FindRange(ctx context.Context, symbol, interval string, from, to time.Time) ([]candleentity.Candle, error)
}

// Result は1回の分析の全出力です。生成後は読み取り専用で、
// 同一シリーズ・同一パラメータに対して常に同一の内容になります。
type Result struct {
	Symbol      string
	Window      int
	Multiplier  float64
	From, To    time.Time
	Annotated   []entity.AnnotatedBar // 派生フィールド付きの全バー
	Significant []entity.AnnotatedBar // 有意フラグの立ったバーのみ
	Resistance  []entity.Level        // 未突破レジスタンス（元バーの日付順）
	Support     []entity.Level        // 未突破サポート（元バーの日付順）
}

// analysisUsecase は分析パイプライン（ATR計算 → 有意判定 → レベル走査）を
// 実行するユースケースです。共有状態を持たず、別々のシリーズに対する
// 並行呼び出しは安全です。
type analysisUsecase struct {
	bars BarRepository
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
func NewAnalysisUsecase(bars BarRepository) *analysisUsecase {
	return &analysisUsecase{bars: bars}
}

// Analyze は終端日endまでのシリーズを読み込み、3段のパイプラインを順に実行します。
// window・multiplierが0以下の場合はデフォルト値を使用します。
// シリーズが空ならErrEmptyInput、ウィンドウ本数未満ならErrInsufficientData、
// OHLC順序の壊れたバーがあればErrMalformedBarを返し、部分的な結果は生成しません。
func (au *analysisUsecase) Analyze(ctx context.Context, symbol string, end time.Time, window int, multiplier float64) (*Result, error) {
	if window <= 0 {
		window = DefaultWindowSize
	}
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}

	from := end.AddDate(0, 0, -DefaultLookbackDays)
	candles, err := au.bars.FindRange(ctx, symbol, AnalysisInterval, from, end)
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, ErrEmptyInput
	}

	bars := make([]entity.Bar, len(candles))
	for i, c := range candles {
		bars[i] = entity.Bar{
			Time:   c.Time,
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		}
	}

	annotated, err := annotate(bars, window)
	if err != nil {
		return nil, err
	}
	annotated = classify(annotated, multiplier)
	resistance, support := scanLevels(annotated, end)

	return &Result{
		Symbol:      symbol,
		Window:      window,
		Multiplier:  multiplier,
		From:        from,
		To:          end,
		Annotated:   annotated,
		Significant: significantOf(annotated),
		Resistance:  resistance,
		Support:     support,
	}, nil
}
