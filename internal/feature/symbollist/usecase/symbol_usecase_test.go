package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"levels_backend/internal/feature/symbollist/domain/entity"
	"levels_backend/internal/feature/symbollist/usecase"
)

// mockSymbolRepository はSymbolRepositoryインターフェースのモック実装です。
type mockSymbolRepository struct {
	ListActiveFunc      func(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	return m.ListActiveFunc(ctx)
}

func (m *mockSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	return m.ListActiveCodesFunc(ctx)
}

func symbolFixture(id uint, code, name string, sortKey int) entity.Symbol {
	return entity.Symbol{ID: id, Code: code, Name: name, Market: "TSE", IsActive: true, SortKey: sortKey}
}

// TestSymbolUsecase_ListActiveSymbols はリポジトリの結果がそのまま
// 呼び出し元へ返ることを検証します。usecase層での加工はありません。
func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	t.Parallel()

	toyota := symbolFixture(1, "7203.T", "Toyota Motor", 1)
	sony := symbolFixture(2, "6758.T", "Sony Group", 2)

	tests := []struct {
		name    string
		repo    func(ctx context.Context) ([]entity.Symbol, error)
		want    []entity.Symbol
		wantErr string
	}{
		{
			name: "returns active symbols in repository order",
			repo: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{toyota, sony}, nil
			},
			want: []entity.Symbol{toyota, sony},
		},
		{
			name: "empty master yields empty slice",
			repo: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			want: []entity.Symbol{},
		},
		{
			name: "repository error is propagated",
			repo: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database connection failed")
			},
			wantErr: "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{ListActiveFunc: tt.repo})

			symbols, err := uc.ListActiveSymbols(context.Background())

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, symbols)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, symbols)
		})
	}
}

// キャンセル済みコンテキストはリポジトリ経由でそのままエラーになります。
func TestSymbolUsecase_ListActiveSymbols_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) {
			return nil, ctx.Err()
		},
	})

	symbols, err := uc.ListActiveSymbols(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, symbols)
}
