package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	symbolentity "levels_backend/internal/feature/symbollist/domain/entity"
	symbollistusecase "levels_backend/internal/feature/symbollist/usecase"
	"levels_backend/internal/feature/symbolresolve/domain/entity"
	"levels_backend/internal/feature/symbolresolve/usecase"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockLogoDetector はLogoDetectorインターフェースのモック実装です。
type mockLogoDetector struct {
	DetectLogosFunc  func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
	DetectLogosCalls int
}

func (m *mockLogoDetector) DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
	m.DetectLogosCalls++
	if m.DetectLogosFunc != nil {
		return m.DetectLogosFunc(ctx, imageData)
	}
	return nil, errors.New("DetectLogosFunc is not implemented")
}

// mockSymbolFinder はSymbolFinderインターフェースのモック実装です。
type mockSymbolFinder struct {
	FindByNameFunc  func(ctx context.Context, name string) (*symbolentity.Symbol, error)
	FindByNameCalls int
}

func (m *mockSymbolFinder) FindByName(ctx context.Context, name string) (*symbolentity.Symbol, error) {
	m.FindByNameCalls++
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, symbollistusecase.ErrSymbolNotFound
}

// symbolTable はテスト用の企業名→銘柄の対応表です。
var symbolTable = map[string]*symbolentity.Symbol{
	"Toyota": {Code: "7203.T", Name: "Toyota Motor", Market: "TSE"},
	"Sony":   {Code: "6758.T", Name: "Sony Group", Market: "TSE"},
}

func lookupSymbol(ctx context.Context, name string) (*symbolentity.Symbol, error) {
	if s, ok := symbolTable[name]; ok {
		return s, nil
	}
	return nil, symbollistusecase.ErrSymbolNotFound
}

func TestSymbolResolveUsecase_Resolve(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		imageData   []byte
		mockDetect  func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
		expected    []entity.ResolvedSymbol
		expectedErr error
	}{
		{
			name:      "success: detected logos resolve to symbols",
			imageData: []byte("fake-image-data"),
			mockDetect: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
				return []entity.DetectedLogo{
					{Name: "Toyota", Confidence: 0.95},
					{Name: "Sony", Confidence: 0.87},
				}, nil
			},
			expected: []entity.ResolvedSymbol{
				{Code: "7203.T", Name: "Toyota Motor", Market: "TSE", Confidence: 0.95},
				{Code: "6758.T", Name: "Sony Group", Market: "TSE", Confidence: 0.87},
			},
		},
		{
			name:      "success: unlisted logos are skipped",
			imageData: []byte("fake-image-data"),
			mockDetect: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
				return []entity.DetectedLogo{
					{Name: "Toyota", Confidence: 0.95},
					{Name: "Unlisted Startup", Confidence: 0.90},
				}, nil
			},
			expected: []entity.ResolvedSymbol{
				{Code: "7203.T", Name: "Toyota Motor", Market: "TSE", Confidence: 0.95},
			},
		},
		{
			name:      "success: duplicate matches keep the highest confidence",
			imageData: []byte("fake-image-data"),
			mockDetect: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
				return []entity.DetectedLogo{
					{Name: "Sony", Confidence: 0.60},
					{Name: "Sony", Confidence: 0.92},
				}, nil
			},
			expected: []entity.ResolvedSymbol{
				{Code: "6758.T", Name: "Sony Group", Market: "TSE", Confidence: 0.92},
			},
		},
		{
			name:      "success: no logos detected returns empty list",
			imageData: []byte("fake-image-data"),
			mockDetect: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
				return nil, nil
			},
			expected: []entity.ResolvedSymbol{},
		},
		{
			name:        "error: empty image data",
			imageData:   []byte{},
			expectedErr: usecase.ErrEmptyImage,
		},
		{
			name:        "error: image too large",
			imageData:   make([]byte, usecase.MaxImageSize+1),
			expectedErr: usecase.ErrImageTooLarge,
		},
		{
			name:      "error: detector returns error",
			imageData: []byte("fake-image-data"),
			mockDetect: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
				return nil, ErrAPI
			},
			expectedErr: ErrAPI,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detector := &mockLogoDetector{DetectLogosFunc: tc.mockDetect}
			finder := &mockSymbolFinder{FindByNameFunc: lookupSymbol}
			uc := usecase.NewSymbolResolveUsecase(detector, finder)

			resolved, err := uc.Resolve(ctx, tc.imageData)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				if resolved != nil {
					t.Errorf("expected nil result on error, got %v", resolved)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(resolved, tc.expected) {
				t.Errorf("result mismatch: got %v, want %v", resolved, tc.expected)
			}
		})
	}
}

// TestSymbolResolveUsecase_Resolve_FinderError はErrSymbolNotFound以外の
// 検索エラーが呼び出し元に伝播されることを検証します。
func TestSymbolResolveUsecase_Resolve_FinderError(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("database error")

	detector := &mockLogoDetector{
		DetectLogosFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error) {
			return []entity.DetectedLogo{{Name: "Toyota", Confidence: 0.95}}, nil
		},
	}
	finder := &mockSymbolFinder{
		FindByNameFunc: func(ctx context.Context, name string) (*symbolentity.Symbol, error) {
			return nil, dbErr
		},
	}
	uc := usecase.NewSymbolResolveUsecase(detector, finder)

	_, err := uc.Resolve(ctx, []byte("fake-image-data"))

	if !errors.Is(err, dbErr) {
		t.Fatalf("expected %v, got %v", dbErr, err)
	}
}
