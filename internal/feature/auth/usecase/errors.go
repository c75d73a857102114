// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrUserNotFound はメールアドレスまたはIDでユーザーが見つからない場合に返されます。
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists は登録済みのメールアドレスで再登録しようとした場合に返されます。
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials はメールアドレスとパスワードの組み合わせが一致しない場合に返されます。
	// ユーザー不存在とパスワード不一致を呼び出し側から区別できないようにします。
	ErrInvalidCredentials = errors.New("invalid email or password")
)
