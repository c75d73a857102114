package http

import (
	"net"
	"net/http"
	"time"
)

// Transportのチューニング値。外部API（Twelve Data等）への定期アクセスを想定。
const (
	dialTimeout         = 5 * time.Second
	keepAliveInterval   = 30 * time.Second
	maxIdleConns        = 100
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
)

// NewHTTPClient は外部API呼び出し用のHTTPクライアントを作成します。
// http.DefaultClientにはタイムアウトがないため必ずこちらを使うこと。
// timeoutはリクエスト全体（接続＋送受信）に適用されます。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAliveInterval,
		}).DialContext,
		MaxIdleConns:        maxIdleConns,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
