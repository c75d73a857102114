// Package ratelimiter は外部API呼び出しの頻度を抑える固定ウィンドウ式リミッターを提供します。
package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiterInterface はレート制限付き操作の待機を抽象化します。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter はintervalあたりlimit回までの呼び出しを許可し、
// 超過分はウィンドウの残り時間だけブロックします。
// 単一goroutineからの利用を想定しています（取り込みバッチは直列実行）。
type RateLimiter struct {
	limit       int
	interval    time.Duration
	used        int
	windowStart time.Time
}

// NewRateLimiter はRateLimiterの新しいインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		interval:    interval,
		windowStart: time.Now(),
	}
}

// WaitIfNeeded は現在のウィンドウの上限に達している場合、次のウィンドウまで待機します。
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if elapsed := now.Sub(rl.windowStart); elapsed >= rl.interval {
		rl.used = 0
		rl.windowStart = now
	}

	rl.used++
	if rl.used <= rl.limit {
		return
	}

	if remaining := rl.interval - now.Sub(rl.windowStart); remaining > 0 {
		slog.Info("rate limit hit, sleeping", "limit", rl.limit, "sleep", remaining)
		time.Sleep(remaining)
	}
	rl.used = 1
	rl.windowStart = time.Now()
}
