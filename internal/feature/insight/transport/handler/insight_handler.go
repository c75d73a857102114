// Package handler はinsightフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"levels_backend/internal/api"
	analysisusecase "levels_backend/internal/feature/analysis/usecase"
	"levels_backend/internal/feature/insight/domain/entity"
)

// dateLayout はクエリパラメータとレスポンスの日付形式です（時刻成分なし）。
const dateLayout = "2006-01-02"

// InsightUsecase は分析結果の解説生成ユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type InsightUsecase interface {
	Explain(ctx context.Context, symbol string, end time.Time, window int, multiplier float64) (*entity.Insight, error)
}

// InsightHandler は分析解説リクエストを処理します。
type InsightHandler struct {
	uc InsightUsecase
}

// NewInsightHandler はInsightHandlerの新しいインスタンスを生成します。
func NewInsightHandler(uc InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// GetInsightHandler は銘柄コードと終端日を受け取り、分析結果のAI解説を返します。
//
// エンドポイント例:
// GET /analysis/:code/insight?date=2025-06-30&window=14&multiplier=1.2
//
// dateを省略した場合は当日（UTC）を終端日とします。
func (h *InsightHandler) GetInsightHandler(c *gin.Context) {
	code := c.Param("code")

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if s := c.Query("date"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date; expected YYYY-MM-DD"})
			return
		}
		end = parsed
	}

	window, ok := positiveIntQuery(c, "window")
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid window; expected a positive integer"})
		return
	}
	multiplier, ok := positiveFloatQuery(c, "multiplier")
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid multiplier; expected a positive number"})
		return
	}

	insight, err := h.uc.Explain(c.Request.Context(), code, end, window, multiplier)
	if err != nil {
		switch {
		case errors.Is(err, analysisusecase.ErrEmptyInput):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no data found for this ticker and date range"})
		case errors.Is(err, analysisusecase.ErrInsufficientData),
			errors.Is(err, analysisusecase.ErrMalformedBar):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, api.InsightResponse{
		Symbol:     insight.Symbol,
		Date:       insight.Date.UTC().Format(dateLayout),
		Commentary: insight.Commentary,
	})
}

// positiveIntQuery はクエリパラメータを正の整数として解釈します。
// 未指定は0を返し、usecase側でデフォルトに正規化されます。
// 解釈できない値と0以下はfalseを返します。
func positiveIntQuery(c *gin.Context, key string) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// positiveFloatQuery はpositiveIntQueryのfloat64版です。
func positiveFloatQuery(c *gin.Context, key string) (float64, bool) {
	s := c.Query(key)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
