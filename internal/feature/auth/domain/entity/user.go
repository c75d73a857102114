// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User は登録済みユーザーを表します。
// Passwordにはbcryptハッシュのみを格納し、平文は保持しません。
type User struct {
	ID uint `gorm:"primaryKey"`

	// Email は認証に使用するメールアドレスです。全ユーザーで一意です。
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password はハッシュ化済みパスワードです。
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
