// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"levels_backend/internal/api"
	"levels_backend/internal/feature/analysis/domain/entity"
	"levels_backend/internal/feature/analysis/transport/http/dto"
	"levels_backend/internal/feature/analysis/usecase"
)

// dateLayout はクエリパラメータとレスポンスの日付形式です（時刻成分なし）。
const dateLayout = "2006-01-02"

// AnalysisUsecase は分析パイプラインのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, symbol string, end time.Time, window int, multiplier float64) (*usecase.Result, error)
}

// AnalysisHandler は分析リクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler は指定されたusecaseでAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// GetAnalysisHandler は銘柄コードと終端日を受け取り、有意ロウソク足と
// 未突破レベルをJSONで返します。
//
// エンドポイント例:
// GET /analysis/:code?date=2025-06-30&window=14&multiplier=1.2
//
// dateを省略した場合は当日（UTC）を終端日とします。
func (h *AnalysisHandler) GetAnalysisHandler(c *gin.Context) {
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

	res, err := h.uc.Analyze(c.Request.Context(), code, end, window, multiplier)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyInput):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no data found for this ticker and date range"})
		case errors.Is(err, usecase.ErrInsufficientData),
			errors.Is(err, usecase.ErrMalformedBar):
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toResponse(res))
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

// toResponse はResultを表示用DTOに変換します。価格の丸めはここでのみ行います。
func toResponse(res *usecase.Result) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		Symbol:           res.Symbol,
		Window:           res.Window,
		Multiplier:       res.Multiplier,
		From:             res.From.Format(dateLayout),
		To:               res.To.Format(dateLayout),
		Bars:             toBarItems(res.Annotated),
		SignificantBars:  toBarItems(res.Significant),
		ResistanceLevels: toLevelItems(res.Resistance),
		SupportLevels:    toLevelItems(res.Support),
	}
}

func toBarItems(bars []entity.AnnotatedBar) []dto.AnnotatedBarItem {
	out := make([]dto.AnnotatedBarItem, 0, len(bars))
	for _, b := range bars {
		item := dto.AnnotatedBarItem{
			Time:        b.Time.UTC().Format(dateLayout),
			Open:        round2(b.Open),
			High:        round2(b.High),
			Low:         round2(b.Low),
			Close:       round2(b.Close),
			Volume:      b.Volume,
			TrueRange:   round2(b.TrueRange),
			Significant: b.Significant,
		}
		if b.HasATR {
			atr := round2(b.ATR)
			item.ATR = &atr
		}
		out = append(out, item)
	}
	return out
}

func toLevelItems(levels []entity.Level) []dto.LevelItem {
	out := make([]dto.LevelItem, 0, len(levels))
	for _, lv := range levels {
		out = append(out, dto.LevelItem{
			Time:  lv.Time.UTC().Format(dateLayout),
			Price: round2(lv.Price),
			Kind:  string(lv.Kind),
		})
	}
	return out
}

// round2 は表示用に小数2桁へ丸めます。
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
