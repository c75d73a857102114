// Package entity はinsightフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Insight は1回の分析結果に対するAI生成の解説を表します。
type Insight struct {
	Symbol     string    // 銘柄コード
	Date       time.Time // 分析の終端日
	Commentary string    // AI生成の解説
}
