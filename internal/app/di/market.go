// Package di はアプリケーションコンポーネントの組み立てを提供します。
package di

import (
	"levels_backend/internal/platform/externalapi/twelvedata"
	infrahttp "levels_backend/internal/platform/http"
)

// NewMarket は環境変数から設定を読み込み、タイムアウト付きHTTPクライアントを
// 備えたTwelveDataMarketを組み立てます。
func NewMarket() *twelvedata.TwelveDataMarket {
	cfg := twelvedata.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return twelvedata.NewTwelveDataMarket(cfg, httpClient)
}
