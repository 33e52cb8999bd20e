package adapters

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"card_backend/internal/feature/catalog/domain/entity"
	"card_backend/internal/feature/catalog/usecase"
)

// cardPostgres はCardRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type cardPostgres struct {
	db *gorm.DB
}

// cardPostgresがCardRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CardRepository = (*cardPostgres)(nil)

// NewCardRepository は指定されたgorm.DB接続でcardPostgresの新しいインスタンスを生成します。
func NewCardRepository(db *gorm.DB) *cardPostgres {
	return &cardPostgres{db: db}
}

// cardSummaryRow は一覧クエリのスキャン先です。カラム名はSELECTのエイリアスに対応します。
type cardSummaryRow struct {
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

const cardSummarySelect = `
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

const cardSummaryGroup = `c.id, c.name, s.name, c.rarity, c.image_small, c.image_large, c.supertype, c.number, c.hp, c.artist`

// ListPage はフィルタに一致するカードの1ページ分と総件数を返します。
// データクエリと件数クエリは同一の述語リストを共有し、独立しているため並行に実行します。
// セットとの結合はINNER JOIN（セットを持たないカードは構造上存在しない想定）、
// 価格はLEFT JOINし、行がない場合の最高値は0になります。
// 並びはname, idの順で、同名カードがあってもページをまたいで順序が入れ替わりません。
func (r *cardPostgres) ListPage(ctx context.Context, filter usecase.CardFilter, limit, offset int) (entity.CardPage, error) {
	ps := cardPredicates(filter)

	var (
		rows  []cardSummaryRow
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := r.db.WithContext(gctx).
			Table("cards c").
			Select(cardSummarySelect).
			Joins("INNER JOIN sets s ON s.id = c.set_id").
			Joins("LEFT JOIN prices p ON p.card_id = c.id")
		q = applyPredicates(q, ps)
		return q.Group(cardSummaryGroup).
			Order("c.name, c.id").
			Limit(limit).
			Offset(offset).
			Scan(&rows).Error
	})

	g.Go(func() error {
		q := r.db.WithContext(gctx).
			Table("cards c").
			Joins("INNER JOIN sets s ON s.id = c.set_id")
		q = applyPredicates(q, ps)
		return q.Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return entity.CardPage{}, err
	}

	cards := make([]entity.CardSummary, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, entity.CardSummary{
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
	return entity.CardPage{Cards: cards, Total: total}, nil
}

// cardDetailRow は詳細クエリの主レコードのスキャン先です。
type cardDetailRow struct {
	ID                   string
	Name                 string
	Number               string
	Rarity               *string
	Supertype            string
	HP                   *string `gorm:"column:hp"`
	Level                *string
	Artist               *string
	FlavorText           *string
	EvolvesFrom          *string
	ConvertedRetreatCost *int
	LegalityUnlimited    *string
	LegalityExpanded     *string
	ImageSmallURL        string
	ImageLargeURL        string
	SetName              string
	SetSeries            string
	SetReleaseDate       *string
}

const cardDetailSelect = `
	c.id,
	c.name,
	c.number,
	c.rarity,
	c.supertype,
	c.hp,
	c.level,
	c.artist,
	c.flavor_text,
	c.evolves_from,
	c.converted_retreat_cost,
	c.legality_unlimited,
	c.legality_expanded,
	c.image_small AS image_small_url,
	c.image_large AS image_large_url,
	s.name AS set_name,
	s.series AS set_series,
	s.release_date AS set_release_date`

// FindByID はカード1件の非正規化詳細ビューを組み立てて返します。
// 主レコードの取得後、8つの関連テーブル参照を並行に発行し、すべて揃ってからマージします。
// 参照同士に依存関係はありませんが、どれか1つでも失敗した場合は全体を失敗として扱います
// （部分的な結果はクライアントに誤解を与えるため返しません）。
func (r *cardPostgres) FindByID(ctx context.Context, id string) (*entity.CardDetail, error) {
	var head cardDetailRow
	err := r.db.WithContext(ctx).
		Table("cards c").
		Select(cardDetailSelect).
		Joins("INNER JOIN sets s ON s.id = c.set_id").
		Where("c.id = ?", id).
		Take(&head).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCardNotFound
		}
		return nil, err
	}

	var (
		types       []string
		subtypes    []string
		attacks     []entity.Attack
		abilities   []entity.Ability
		weaknesses  []entity.Weakness
		resistances []entity.Resistance
		pokedex     []int
		prices      []entity.Price
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&CardTypeModel{}).
			Where("card_id = ?", id).
			Order("type").
			Pluck("type", &types).Error
	})

	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&CardSubtypeModel{}).
			Where("card_id = ?", id).
			Order("subtype").
			Pluck("subtype", &subtypes).Error
	})

	g.Go(func() error {
		var err error
		attacks, err = r.findAttacks(gctx, id)
		return err
	})

	g.Go(func() error {
		var rows []AbilityModel
		if err := r.db.WithContext(gctx).
			Where("card_id = ?", id).
			Order("ability_order").
			Find(&rows).Error; err != nil {
			return err
		}
		abilities = make([]entity.Ability, 0, len(rows))
		for _, m := range rows {
			abilities = append(abilities, entity.Ability{Name: m.Name, Text: m.Text, Type: m.Type})
		}
		return nil
	})

	g.Go(func() error {
		var rows []CardWeaknessModel
		if err := r.db.WithContext(gctx).
			Where("card_id = ?", id).
			Find(&rows).Error; err != nil {
			return err
		}
		weaknesses = make([]entity.Weakness, 0, len(rows))
		for _, m := range rows {
			weaknesses = append(weaknesses, entity.Weakness{Type: m.Type, Value: m.Value})
		}
		return nil
	})

	g.Go(func() error {
		var rows []CardResistanceModel
		if err := r.db.WithContext(gctx).
			Where("card_id = ?", id).
			Find(&rows).Error; err != nil {
			return err
		}
		resistances = make([]entity.Resistance, 0, len(rows))
		for _, m := range rows {
			resistances = append(resistances, entity.Resistance{Type: m.Type, Value: m.Value})
		}
		return nil
	})

	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&CardPokedexNumberModel{}).
			Where("card_id = ?", id).
			Order("pokedex_number").
			Pluck("pokedex_number", &pokedex).Error
	})

	g.Go(func() error {
		var rows []PriceModel
		if err := r.db.WithContext(gctx).
			Where("card_id = ?", id).
			Order("source, variant").
			Find(&rows).Error; err != nil {
			return err
		}
		prices = make([]entity.Price, 0, len(rows))
		for _, m := range rows {
			prices = append(prices, entity.Price{
				Source:    m.Source,
				Variant:   m.Variant,
				Low:       m.Low,
				Mid:       m.Mid,
				High:      m.High,
				Market:    m.Market,
				DirectLow: m.DirectLow,
				UpdatedAt: normalizeTime(m.UpdatedAt),
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &entity.CardDetail{
		ID:                   head.ID,
		Name:                 head.Name,
		Number:               head.Number,
		Rarity:               head.Rarity,
		Supertype:            head.Supertype,
		HP:                   head.HP,
		Level:                head.Level,
		Artist:               head.Artist,
		FlavorText:           head.FlavorText,
		EvolvesFrom:          head.EvolvesFrom,
		ConvertedRetreatCost: head.ConvertedRetreatCost,
		LegalityUnlimited:    head.LegalityUnlimited,
		LegalityExpanded:     head.LegalityExpanded,
		ImageSmallURL:        head.ImageSmallURL,
		ImageLargeURL:        head.ImageLargeURL,
		SetName:              head.SetName,
		SetSeries:            head.SetSeries,
		SetReleaseDate:       head.SetReleaseDate,

		Types:                  ensureSlice(types),
		Subtypes:               ensureSlice(subtypes),
		Attacks:                attacks,
		Abilities:              abilities,
		Weaknesses:             weaknesses,
		Resistances:            resistances,
		NationalPokedexNumbers: ensureSlice(pokedex),
		Prices:                 prices,
	}
	return detail, nil
}

// findAttacks はカードのワザをattack_order順に取得し、各ワザのコスト列を
// cost_order順にまとめてマージします。コストのないワザは空スライスになります。
func (r *cardPostgres) findAttacks(ctx context.Context, cardID string) ([]entity.Attack, error) {
	var rows []AttackModel
	if err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("attack_order").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	attacks := make([]entity.Attack, 0, len(rows))
	if len(rows) == 0 {
		return attacks, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.ID)
	}

	var costs []AttackCostModel
	if err := r.db.WithContext(ctx).
		Where("attack_id IN ?", ids).
		Order("attack_id, cost_order").
		Find(&costs).Error; err != nil {
		return nil, err
	}

	costsByAttack := make(map[uint][]string, len(rows))
	for _, cm := range costs {
		costsByAttack[cm.AttackID] = append(costsByAttack[cm.AttackID], cm.EnergyType)
	}

	for _, m := range rows {
		cost := costsByAttack[m.ID]
		if cost == nil {
			cost = []string{}
		}
		attacks = append(attacks, entity.Attack{
			Name:                m.Name,
			Cost:                cost,
			Damage:              m.Damage,
			Text:                m.Text,
			ConvertedEnergyCost: m.ConvertedEnergyCost,
		})
	}
	return attacks, nil
}

// ListSetNames はセット名の重複なしリストをアルファベット順に返します。
func (r *cardPostgres) ListSetNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&SetModel{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return ensureSlice(names), nil
}

// ListRarities はNULLを除くレアリティの重複なしリストをアルファベット順に返します。
func (r *cardPostgres) ListRarities(ctx context.Context) ([]string, error) {
	var rarities []string
	if err := r.db.WithContext(ctx).
		Model(&CardModel{}).
		Distinct("rarity").
		Where("rarity IS NOT NULL").
		Order("rarity").
		Pluck("rarity", &rarities).Error; err != nil {
		return nil, err
	}
	return ensureSlice(rarities), nil
}

// ListSupertypes はNULLを除くカード区分の重複なしリストをアルファベット順に返します。
func (r *cardPostgres) ListSupertypes(ctx context.Context) ([]string, error) {
	var supertypes []string
	if err := r.db.WithContext(ctx).
		Model(&CardModel{}).
		Distinct("supertype").
		Where("supertype IS NOT NULL").
		Order("supertype").
		Pluck("supertype", &supertypes).Error; err != nil {
		return nil, err
	}
	return ensureSlice(supertypes), nil
}

// ensureSlice はnilスライスを空スライスに揃えます。JSONでnullではなく[]を返すためです。
func ensureSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// normalizeTime はドライバ間のタイムゾーン表現の揺れを吸収してUTCに揃えます。
func normalizeTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
