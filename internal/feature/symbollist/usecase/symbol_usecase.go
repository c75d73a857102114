// Package usecase はsymbollistフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"levels_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository は銘柄マスターの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SymbolRepository interface {
	// ListActive はアクティブな銘柄をsort_key順で返します。
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	// ListActiveCodes はアクティブな銘柄のコードのみを返します（取り込みバッチ用）。
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// SymbolUsecase は銘柄一覧操作のユースケースを定義します。
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase はSymbolUsecaseの新しいインスタンスを生成します。
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols はアクティブな全銘柄を返します。
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}
