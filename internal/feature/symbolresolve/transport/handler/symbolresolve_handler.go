// Package handler はsymbolresolveフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"levels_backend/internal/api"
	"levels_backend/internal/feature/symbolresolve/domain/entity"
	"levels_backend/internal/feature/symbolresolve/usecase"
)

// SymbolResolveUsecase はロゴ画像から銘柄を解決するユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SymbolResolveUsecase interface {
	Resolve(ctx context.Context, imageData []byte) ([]entity.ResolvedSymbol, error)
}

// SymbolResolveHandler はロゴ画像から銘柄を解決するHTTPリクエストを処理します。
type SymbolResolveHandler struct {
	uc SymbolResolveUsecase
}

// NewSymbolResolveHandler はSymbolResolveHandlerの新しいインスタンスを生成します。
func NewSymbolResolveHandler(uc SymbolResolveUsecase) *SymbolResolveHandler {
	return &SymbolResolveHandler{uc: uc}
}

// Resolve はアップロードされた画像からロゴを検出し、銘柄に照合します。
//
// エンドポイント: POST /symbols/resolve
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
//
// 照合できた銘柄がない場合は空の配列を返します。
func (h *SymbolResolveHandler) Resolve(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	resolved, err := h.uc.Resolve(c.Request.Context(), imageData)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyImage) || errors.Is(err, usecase.ErrImageTooLarge) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("銘柄解決に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "銘柄の解決に失敗しました"})
		return
	}

	out := make([]api.ResolvedSymbolResponse, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, api.ResolvedSymbolResponse{
			Code:       r.Code,
			Name:       r.Name,
			Market:     r.Market,
			Confidence: r.Confidence,
		})
	}
	c.JSON(http.StatusOK, out)
}
