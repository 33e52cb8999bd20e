// Package usecase はカードカタログ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"card_backend/internal/feature/catalog/domain/entity"
)

const (
	// DefaultPage はページ番号のデフォルト値です（1始まり）。
	DefaultPage = 1
	// DefaultLimit は1ページあたりのデフォルト件数です。
	DefaultLimit = 10
	// MaxLimit は1ページあたりの最大件数です。リクエスト値に関わらずこの値で打ち切ります。
	MaxLimit = 100
)

// CardFilter は一覧クエリの絞り込み条件です。空文字列のフィールドは条件なしとして扱います。
// 条件はすべてANDで結合されます。
type CardFilter struct {
	// Search はカード名に対する大文字小文字を区別しない部分一致検索です。
	Search string
	// Rarity はレアリティの完全一致です。
	Rarity string
	// SetName はセット名の完全一致です。
	SetName string
	// Supertype はカード区分（Pokémon / Trainer / Energy）の完全一致です。
	Supertype string
}

// CardRepository はカードカタログの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CardRepository interface {
	// ListPage はフィルタに一致するカードの1ページ分と総件数を返します。
	// データクエリと件数クエリは同一の述語を共有しなければなりません。
	ListPage(ctx context.Context, filter CardFilter, limit, offset int) (entity.CardPage, error)

	// FindByID はカード1件の非正規化詳細ビューを返します。
	// カードが存在しない場合は ErrCardNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.CardDetail, error)

	// ListSetNames はセット名の重複なしソート済みリストを返します。
	ListSetNames(ctx context.Context) ([]string, error)
	// ListRarities はNULLを除くレアリティの重複なしソート済みリストを返します。
	ListRarities(ctx context.Context) ([]string, error)
	// ListSupertypes はNULLを除くカード区分の重複なしソート済みリストを返します。
	ListSupertypes(ctx context.Context) ([]string, error)
}

// catalogUsecase はカタログ操作のユースケースを定義します。
// 型のないHTTP入力と型付きのリポジトリ操作の境界として、ページ/件数の正規化を担います。
type catalogUsecase struct {
	cards CardRepository
}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase(cards CardRepository) *catalogUsecase {
	return &catalogUsecase{cards: cards}
}

// normalizePage は1未満のページ番号を1に丸めます。
func normalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// normalizeLimit は不正なlimitをデフォルト値に、上限超過をMaxLimitに丸めます。
func normalizeLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ListCards はフィルタに一致するカードの1ページ分を返します。
// ページ範囲外のリクエストはエラーにならず、空のリストと正しい総件数を返します。
func (cu *catalogUsecase) ListCards(ctx context.Context, page, limit int, filter CardFilter) (entity.CardPage, int, int, error) {
	page = normalizePage(page)
	limit = normalizeLimit(limit)
	offset := (page - 1) * limit

	result, err := cu.cards.ListPage(ctx, filter, limit, offset)
	if err != nil {
		return entity.CardPage{}, page, limit, err
	}
	return result, page, limit, nil
}

// GetCardDetail はカード1件の詳細ビューを返します。
// 存在しない場合は ErrCardNotFound を返します。
func (cu *catalogUsecase) GetCardDetail(ctx context.Context, id string) (*entity.CardDetail, error) {
	return cu.cards.FindByID(ctx, id)
}

// ListSetNames はフィルタメニュー用のセット名リストを返します。
func (cu *catalogUsecase) ListSetNames(ctx context.Context) ([]string, error) {
	return cu.cards.ListSetNames(ctx)
}

// ListRarities はフィルタメニュー用のレアリティリストを返します。
func (cu *catalogUsecase) ListRarities(ctx context.Context) ([]string, error) {
	return cu.cards.ListRarities(ctx)
}

// ListSupertypes はフィルタメニュー用のカード区分リストを返します。
func (cu *catalogUsecase) ListSupertypes(ctx context.Context) ([]string, error) {
	return cu.cards.ListSupertypes(ctx)
}
