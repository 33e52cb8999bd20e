package usecase

import (
	"context"
	"strings"

	"card_backend/internal/feature/binder/domain/entity"
	catalogentity "card_backend/internal/feature/catalog/domain/entity"
)

const (
	// maxBinderNameLength はバインダー名の最大文字数です。
	maxBinderNameLength = 100
)

// BinderRepository はバインダーとその収録カードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BinderRepository interface {
	// Create は新しいバインダーを永続化します。
	Create(ctx context.Context, binder *entity.Binder) error

	// ListByUser は指定ユーザーのバインダーを作成順に返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Binder, error)

	// FindOwned はIDと所有者が一致するバインダーを返します。
	// 存在しない場合も他人の所有物の場合もErrBinderNotFoundを返します。
	FindOwned(ctx context.Context, id, userID uint) (*entity.Binder, error)

	// ListCards はバインダー収録カードのサマリーを名前順で返します。
	ListCards(ctx context.Context, binderID uint) ([]catalogentity.CardSummary, error)

	// AddCard はカードをバインダーに追加します。
	// カードが存在しない場合はErrCardNotFound、既に収録済みの場合はErrCardAlreadyInBinderを返します。
	AddCard(ctx context.Context, binderID uint, cardID string) error

	// RemoveCard はカードをバインダーから取り除きます。
	// 収録されていない場合はErrCardNotInBinderを返します。
	RemoveCard(ctx context.Context, binderID uint, cardID string) error
}

// binderUsecase はバインダーのビジネスロジックを実装します。
// カード単位の操作は必ず所有権チェックを先に行います。
type binderUsecase struct {
	binders BinderRepository
}

// NewBinderUsecase はbinderUsecaseの新しいインスタンスを生成します。
func NewBinderUsecase(binders BinderRepository) *binderUsecase {
	return &binderUsecase{binders: binders}
}

// ListBinders は指定ユーザーのバインダー一覧を返します。
func (u *binderUsecase) ListBinders(ctx context.Context, userID uint) ([]entity.Binder, error) {
	return u.binders.ListByUser(ctx, userID)
}

// CreateBinder は指定ユーザーの新しいバインダーを作成します。
// 名前は前後の空白を除去し、空や長すぎる名前は拒否します。
func (u *binderUsecase) CreateBinder(ctx context.Context, userID uint, name string) (*entity.Binder, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxBinderNameLength {
		return nil, ErrInvalidBinderName
	}

	binder := &entity.Binder{UserID: userID, Name: name}
	if err := u.binders.Create(ctx, binder); err != nil {
		return nil, err
	}
	return binder, nil
}

// ListBinderCards は所有権を確認した上でバインダー収録カードを返します。
func (u *binderUsecase) ListBinderCards(ctx context.Context, userID, binderID uint) ([]catalogentity.CardSummary, error) {
	if _, err := u.binders.FindOwned(ctx, binderID, userID); err != nil {
		return nil, err
	}
	return u.binders.ListCards(ctx, binderID)
}

// AddCard は所有権を確認した上でカードをバインダーに追加します。
func (u *binderUsecase) AddCard(ctx context.Context, userID, binderID uint, cardID string) error {
	if _, err := u.binders.FindOwned(ctx, binderID, userID); err != nil {
		return err
	}
	return u.binders.AddCard(ctx, binderID, cardID)
}

// RemoveCard は所有権を確認した上でカードをバインダーから取り除きます。
func (u *binderUsecase) RemoveCard(ctx context.Context, userID, binderID uint, cardID string) error {
	if _, err := u.binders.FindOwned(ctx, binderID, userID); err != nil {
		return err
	}
	return u.binders.RemoveCard(ctx, binderID, cardID)
}
