// Package dto はanalysisフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// AnnotatedBarItem は派生フィールド付きの1本分のバーを表します。
// ATRが未定義のバー（ウィンドウ先頭部分）ではatrはnullになります。
// 価格系フィールドは表示用に小数2桁へ丸めた値です（丸めは表示層のみで行い、
// 計算パイプラインは丸めを一切行いません）。
type AnnotatedBarItem struct {
	Time        string   `json:"time"`         // 日付
	Open        float64  `json:"open"`         // 始値
	High        float64  `json:"high"`         // 高値
	Low         float64  `json:"low"`          // 安値
	Close       float64  `json:"close"`        // 終値
	Volume      int64    `json:"volume"`       // 出来高
	TrueRange   float64  `json:"tr"`           // トゥルーレンジ
	ATR         *float64 `json:"atr"`          // 平均トゥルーレンジ（未定義ならnull）
	Significant bool     `json:"significant"`  // 有意フラグ
}

// LevelItem は未突破レベル1件を表します。
type LevelItem struct {
	Time  string  `json:"time"`  // 元バーの日付
	Price float64 `json:"price"` // レベル価格（小数2桁表示）
	Kind  string  `json:"kind"`  // "resistance" または "support"
}

// AnalysisResponse は分析エンドポイントのレスポンスボディです。
type AnalysisResponse struct {
	Symbol           string             `json:"symbol"`
	Window           int                `json:"window"`
	Multiplier       float64            `json:"multiplier"`
	From             string             `json:"from"`
	To               string             `json:"to"`
	Bars             []AnnotatedBarItem `json:"bars"`
	SignificantBars  []AnnotatedBarItem `json:"significant_bars"`
	ResistanceLevels []LevelItem        `json:"resistance_levels"`
	SupportLevels    []LevelItem        `json:"support_levels"`
}
