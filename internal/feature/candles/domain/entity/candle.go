// Package entity はcandlesフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Candle は1銘柄・1時間足のOHLCVロウソク足データです。
// 日足のTimeはUTC深夜0時のカレンダー日付を持ちます。
// Symbol+Interval+Timeの組で一意です。
type Candle struct {
	Symbol   string    // 銘柄コード（例: "AAPL", "7203.T"）
	Interval string    // 時間足（例: "1day"）
	Time     time.Time // 足の開始時刻
	Open     float64   // 始値
	High     float64   // 高値
	Low      float64   // 安値
	Close    float64   // 終値
	Volume   int64     // 出来高
}
