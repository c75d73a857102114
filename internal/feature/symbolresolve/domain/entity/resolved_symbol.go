// Package entity はsymbolresolveフィーチャーのドメインモデルを定義します。
package entity

// DetectedLogo は画像から検出されたロゴを表します。
type DetectedLogo struct {
	Name       string  // 検出された企業名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}

// ResolvedSymbol は検出されたロゴと銘柄テーブルの照合結果を表します。
type ResolvedSymbol struct {
	Code       string  // 銘柄コード
	Name       string  // 企業名（銘柄テーブル上の正式名称）
	Market     string  // 市場
	Confidence float32 // 元になったロゴ検出の信頼度
}
