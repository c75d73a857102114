// Package usecase はinsightフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	analysisusecase "levels_backend/internal/feature/analysis/usecase"
	"levels_backend/internal/feature/insight/domain/entity"
)

// promptHeader は解説生成プロンプトの先頭部分です。
const promptHeader = "あなたは株式テクニカル分析のアシスタントです。" +
	"以下の分析結果を、個人投資家向けに日本語で3〜5文で解説してください。" +
	"投資助言は行わず、値動きの特徴と価格水準の説明に留めてください。\n\n"

// Analyzer は分析パイプラインの実行を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Analyzer interface {
	Analyze(ctx context.Context, symbol string, end time.Time, window int, multiplier float64) (*analysisusecase.Result, error)
}

// TextGenerator はプロンプトからテキストを生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// insightUsecase は分析結果からAI解説を生成するユースケースです。
type insightUsecase struct {
	analyzer  Analyzer
	generator TextGenerator
}

// NewInsightUsecase はinsightUsecaseの新しいインスタンスを生成します。
func NewInsightUsecase(a Analyzer, g TextGenerator) *insightUsecase {
	return &insightUsecase{analyzer: a, generator: g}
}

// Explain は分析を実行し、その結果の解説を生成します。
// 分析パイプラインのエラー（ErrEmptyInput等）はそのまま伝播されます。
func (u *insightUsecase) Explain(ctx context.Context, symbol string, end time.Time, window int, multiplier float64) (*entity.Insight, error) {
	res, err := u.analyzer.Analyze(ctx, symbol, end, window, multiplier)
	if err != nil {
		return nil, err
	}

	commentary, err := u.generator.Generate(ctx, buildPrompt(res))
	if err != nil {
		return nil, fmt.Errorf("insight generation failed for %q: %w", symbol, err)
	}

	return &entity.Insight{
		Symbol:     res.Symbol,
		Date:       res.To,
		Commentary: commentary,
	}, nil
}

// buildPrompt は分析結果を解説生成用のプロンプトに整形します。
func buildPrompt(res *analysisusecase.Result) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	fmt.Fprintf(&b, "銘柄: %s\n", res.Symbol)
	fmt.Fprintf(&b, "期間: %s 〜 %s\n", res.From.Format("2006-01-02"), res.To.Format("2006-01-02"))
	fmt.Fprintf(&b, "有意なロウソク足（TRがATRの%.1f倍超）: %d本\n", res.Multiplier, len(res.Significant))

	for _, bar := range res.Significant {
		fmt.Fprintf(&b, "- %s: 高値 %.2f / 安値 %.2f / TR %.2f\n",
			bar.Time.Format("2006-01-02"), bar.High, bar.Low, bar.TrueRange)
	}

	if len(res.Resistance) > 0 {
		b.WriteString("未突破のレジスタンスライン:\n")
		for _, lv := range res.Resistance {
			fmt.Fprintf(&b, "- %s: %.2f\n", lv.Time.Format("2006-01-02"), lv.Price)
		}
	}
	if len(res.Support) > 0 {
		b.WriteString("未突破のサポートライン:\n")
		for _, lv := range res.Support {
			fmt.Fprintf(&b, "- %s: %.2f\n", lv.Time.Format("2006-01-02"), lv.Price)
		}
	}

	return b.String()
}
