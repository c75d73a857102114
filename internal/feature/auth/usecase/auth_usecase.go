// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"levels_backend/internal/feature/auth/domain/entity"
)

// minPasswordLength はパスワードの最低文字数です。
const minPasswordLength = 8

// dummyBcryptHash はユーザー不存在時にも比較コストを支払うためのハッシュです。
// 比較をスキップすると応答時間の差からメールアドレスの登録有無が漏れます。
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーの永続化層を抽象化します。
// インターフェースは利用者（usecase）側で定義します。
type UserRepository interface {
	// Create は新規ユーザーを保存します。メールアドレス重複はエラーになります。
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail はメールアドレスでユーザーを1件取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID はIDでユーザーを1件取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator は署名済みトークンの発行を抽象化します。
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{users: users, jwtGenerator: jwtGenerator}
}

// Signup はパスワードをbcryptでハッシュ化して新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.users.Create(ctx, &entity.User{Email: email, Password: string(hashed)})
}

// Login は認証に成功した場合のみ署名済みJWTを返します。
// 未登録メールとパスワード不一致はErrInvalidCredentialsに畳み込み、
// どちらの場合もbcrypt比較を実行して応答時間を揃えます。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	hash := dummyBcryptHash
	if findErr == nil {
		hash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if findErr != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
