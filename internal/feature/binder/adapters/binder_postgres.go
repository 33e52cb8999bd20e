// Package adapters はbinderフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"card_backend/internal/feature/binder/domain/entity"
	"card_backend/internal/feature/binder/usecase"
	catalogentity "card_backend/internal/feature/catalog/domain/entity"
)

// binderPostgres はBinderRepositoryインターフェースのPostgreSQL実装です。
type binderPostgres struct {
	db *gorm.DB
}

// binderPostgresがBinderRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BinderRepository = (*binderPostgres)(nil)

// NewBinderRepository は指定されたgorm.DB接続でbinderPostgresの新しいインスタンスを生成します。
func NewBinderRepository(db *gorm.DB) *binderPostgres {
	return &binderPostgres{db: db}
}

// Create はバインダーをデータベースに追加します。
func (r *binderPostgres) Create(ctx context.Context, binder *entity.Binder) error {
	return r.db.WithContext(ctx).Create(binder).Error
}

// ListByUser は指定ユーザーのバインダーを作成順に返します。
func (r *binderPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Binder, error) {
	var binders []entity.Binder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&binders).Error
	if err != nil {
		return nil, err
	}
	return binders, nil
}

// FindOwned はIDと所有者の両方が一致するバインダーを取得します。
// 他人のバインダーと存在しないバインダーは同じusecase.ErrBinderNotFoundになります。
func (r *binderPostgres) FindOwned(ctx context.Context, id, userID uint) (*entity.Binder, error) {
	var binder entity.Binder
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&binder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBinderNotFound
		}
		return nil, err
	}
	return &binder, nil
}

// binderCardRow は収録カード一覧クエリのスキャン先です。
type binderCardRow struct {
	ID            string
	Name          string
	SetName       string
	Rarity        *string
	ImageSmallURL string
	ImageLargeURL string
	Supertype     string
	Number        string
	HP            *string `gorm:"column:hp"`
	Artist        *string
	HighestPrice  float64
}

const binderCardSelect = `
	c.id,
	c.name,
	s.name AS set_name,
	c.rarity,
	c.image_small AS image_small_url,
	c.image_large AS image_large_url,
	c.supertype,
	c.number,
	c.hp,
	c.artist,
	COALESCE(MAX(p.high), 0) AS highest_price`

const binderCardGroup = `c.id, c.name, s.name, c.rarity, c.image_small, c.image_large, c.supertype, c.number, c.hp, c.artist`

// ListCards はバインダー収録カードのサマリーをカタログ一覧と同じ形・同じ並びで返します。
func (r *binderPostgres) ListCards(ctx context.Context, binderID uint) ([]catalogentity.CardSummary, error) {
	var rows []binderCardRow
	err := r.db.WithContext(ctx).
		Table("binder_cards bc").
		Select(binderCardSelect).
		Joins("INNER JOIN cards c ON c.id = bc.card_id").
		Joins("INNER JOIN sets s ON s.id = c.set_id").
		Joins("LEFT JOIN prices p ON p.card_id = c.id").
		Where("bc.binder_id = ?", binderID).
		Group(binderCardGroup).
		Order("c.name, c.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	cards := make([]catalogentity.CardSummary, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, catalogentity.CardSummary{
			ID:            row.ID,
			Name:          row.Name,
			SetName:       row.SetName,
			Rarity:        row.Rarity,
			ImageSmallURL: row.ImageSmallURL,
			ImageLargeURL: row.ImageLargeURL,
			Supertype:     row.Supertype,
			Number:        row.Number,
			HP:            row.HP,
			Artist:        row.Artist,
			HighestPrice:  row.HighestPrice,
		})
	}
	return cards, nil
}

// AddCard はカードをバインダーに追加します。
// 重複はON CONFLICT DO NOTHINGで吸収し、影響行数0をusecase.ErrCardAlreadyInBinderに写像します。
func (r *binderPostgres) AddCard(ctx context.Context, binderID uint, cardID string) error {
	// カタログに存在しないIDはここで弾く
	var count int64
	if err := r.db.WithContext(ctx).Table("cards").Where("id = ?", cardID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return usecase.ErrCardNotFound
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "binder_id"}, {Name: "card_id"}},
			DoNothing: true,
		}).
		Create(&entity.BinderCard{BinderID: binderID, CardID: cardID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCardAlreadyInBinder
	}
	return nil
}

// RemoveCard はカードをバインダーから取り除きます。
func (r *binderPostgres) RemoveCard(ctx context.Context, binderID uint, cardID string) error {
	res := r.db.WithContext(ctx).
		Where("binder_id = ? AND card_id = ?", binderID, cardID).
		Delete(&entity.BinderCard{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCardNotInBinder
	}
	return nil
}
