package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"card_backend/internal/feature/auth/domain/entity"
)

// minPasswordLength は受け付けるパスワードの最低文字数です。
// DTO側のバリデーションと同じ値ですが、HTTP以外の入口から呼ばれても守れるようここでも検証します。
const minPasswordLength = 8

// dummyHash はタイミング攻撃緩和用のbcryptハッシュです。
// 存在しないメールアドレスへのログイン試行でも必ず1回bcrypt比較を実行し、
// 応答時間からユーザーの有無を推測できないようにします。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化します。
	// 同じメールアドレスが既に存在する場合は ErrEmailAlreadyExists を返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスでユーザーを検索します。
	// 見つからない場合は ErrUserNotFound を返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDでユーザーを検索します。
	// 見つからない場合は ErrUserNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator は認証成功後のトークン発行を抽象化します。
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase は登録とログインのビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens JWTGenerator) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Signup はパスワードをbcryptでハッシュ化して新規ユーザーを登録します。
// 平文パスワードは永続化層に渡る前に必ずハッシュ化されます。
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

// Login はメールアドレスとパスワードを検証し、成功時に署名済みJWTを返します。
// ユーザー未検出とパスワード不一致はどちらも ErrInvalidCredentials になります。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	// ユーザーの有無に関わらずbcrypt比較を1回実行する
	hash := dummyHash
	if findErr == nil {
		hash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if findErr != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
