// Package api はHTTPハンドラー間で共有されるリクエスト/レスポンス型を定義します。
package api

// ErrorResponse はエラー時の共通JSONレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は処理成功時の汎用メッセージレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はログイン成功時のJWTトークンレスポンスです。
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest は/signupエンドポイントのリクエストボディを表します。
// Ginのbindingタグでバリデーション（必須・メール形式・最小文字数）を行います。
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest は/loginエンドポイントのリクエストボディを表します。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CandleResponse はロウソク足データのレスポンスDTOです。
type CandleResponse struct {
	Time   string  `json:"time"`   // 日付
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// ResolvedSymbolResponse はロゴ画像から解決された銘柄のレスポンスDTOです。
type ResolvedSymbolResponse struct {
	Code       string  `json:"code"`       // 銘柄コード
	Name       string  `json:"name"`       // 企業名
	Market     string  `json:"market"`     // 市場
	Confidence float32 `json:"confidence"` // ロゴ検出の信頼度（0.0 ~ 1.0）
}

// InsightResponse は分析結果の解説レスポンスDTOです。
type InsightResponse struct {
	Symbol     string `json:"symbol"`     // 銘柄コード
	Date       string `json:"date"`       // 分析の終端日
	Commentary string `json:"commentary"` // AI生成の解説
}
