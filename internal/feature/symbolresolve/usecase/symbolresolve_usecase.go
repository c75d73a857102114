// Package usecase はsymbolresolveフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"levels_backend/internal/feature/symbollist/domain/entity"
	symbollistusecase "levels_backend/internal/feature/symbollist/usecase"
	resolveentity "levels_backend/internal/feature/symbolresolve/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
)

// ErrEmptyImage は画像データが空の場合に返されます。
var ErrEmptyImage = errors.New("image data is empty")

// ErrImageTooLarge は画像サイズが上限を超えた場合に返されます。
var ErrImageTooLarge = fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)

// LogoDetector は画像からロゴを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LogoDetector interface {
	// DetectLogos は画像バイト列からロゴを検出し、検出結果を返します。
	DetectLogos(ctx context.Context, imageData []byte) ([]resolveentity.DetectedLogo, error)
}

// SymbolFinder は企業名から銘柄を検索する読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SymbolFinder interface {
	// FindByName は企業名の部分一致でアクティブな銘柄を1件返します。
	FindByName(ctx context.Context, name string) (*entity.Symbol, error)
}

// symbolResolveUsecase はロゴ検出結果を銘柄テーブルに照合するユースケースです。
type symbolResolveUsecase struct {
	logoDetector LogoDetector
	symbols      SymbolFinder
}

// NewSymbolResolveUsecase はsymbolResolveUsecaseの新しいインスタンスを生成します。
func NewSymbolResolveUsecase(ld LogoDetector, sf SymbolFinder) *symbolResolveUsecase {
	return &symbolResolveUsecase{logoDetector: ld, symbols: sf}
}

// Resolve は画像からロゴを検出し、検出された企業名を銘柄テーブルに照合します。
// 照合できなかったロゴは結果から除外されます。同一銘柄に複数のロゴが
// 一致した場合、信頼度の高い方を採用します。
func (u *symbolResolveUsecase) Resolve(ctx context.Context, imageData []byte) ([]resolveentity.ResolvedSymbol, error) {
	if len(imageData) == 0 {
		return nil, ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	logos, err := u.logoDetector.DetectLogos(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("logo detection failed: %w", err)
	}

	resolved := make([]resolveentity.ResolvedSymbol, 0, len(logos))
	byCode := map[string]int{} // code → resolvedスライス内の位置
	for _, logo := range logos {
		symbol, err := u.symbols.FindByName(ctx, logo.Name)
		if err != nil {
			if errors.Is(err, symbollistusecase.ErrSymbolNotFound) {
				// 上場していない企業のロゴは無視する
				continue
			}
			return nil, err
		}

		if i, ok := byCode[symbol.Code]; ok {
			if logo.Confidence > resolved[i].Confidence {
				resolved[i].Confidence = logo.Confidence
			}
			continue
		}

		byCode[symbol.Code] = len(resolved)
		resolved = append(resolved, resolveentity.ResolvedSymbol{
			Code:       symbol.Code,
			Name:       symbol.Name,
			Market:     symbol.Market,
			Confidence: logo.Confidence,
		})
	}

	return resolved, nil
}
