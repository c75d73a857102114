// Package entity はsymbollistフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Symbol は取扱銘柄のマスターレコードです。
// Codeは外部APIにそのまま渡せる銘柄コード（例: 7203.T）、
// Nameはロゴ検出結果の照合にも使う企業名です。
// IsActiveがfalseの銘柄は取り込み・一覧・照合のすべてから除外されます。
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
