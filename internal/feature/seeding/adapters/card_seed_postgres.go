// Package adapters はseedingフィーチャーのリポジトリ実装とデータソース実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalog "card_backend/internal/feature/catalog/adapters"
	"card_backend/internal/feature/seeding/domain/entity"
	"card_backend/internal/feature/seeding/usecase"
)

// cardSeedPostgres はSeedRepositoryインターフェースのPostgreSQL実装です。
// カタログと同じテーブル群（catalogアダプタのGORMモデル）へ書き込みます。
type cardSeedPostgres struct {
	db *gorm.DB
}

var _ usecase.SeedRepository = (*cardSeedPostgres)(nil)

// NewSeedRepository は指定されたgorm.DB接続でcardSeedPostgresの新しいインスタンスを生成します。
func NewSeedRepository(db *gorm.DB) *cardSeedPostgres {
	return &cardSeedPostgres{db: db}
}

// UpsertCards は1バッチ分のカードとその関連レコードを1トランザクションで投入します。
//
// 冪等性の方針:
//   - sets / cards: 主キー衝突時は全フィールドを更新
//   - prices: (card_id, source, variant) 衝突時は数値フィールドとupdated_atのみ更新
//   - types / subtypes / weaknesses / resistances / pokedex: 一意キー衝突時は何もしない
//   - attacks / abilities: カード単位で削除して再挿入（順序列を確実に往復させるため）
func (r *cardSeedPostgres) UpsertCards(ctx context.Context, cards []entity.SeedCard) error {
	if len(cards) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertSets(tx, cards); err != nil {
			return err
		}
		if err := upsertCardRows(tx, cards); err != nil {
			return err
		}
		for _, card := range cards {
			if err := upsertCardRelations(tx, card); err != nil {
				return err
			}
		}
		return nil
	})
}

// upsertSets はバッチ内で一意なセットをまとめてupsertします。
func upsertSets(tx *gorm.DB, cards []entity.SeedCard) error {
	seen := make(map[string]struct{}, len(cards))
	sets := make([]catalog.SetModel, 0, len(cards))
	for _, card := range cards {
		if _, ok := seen[card.Set.ID]; ok {
			continue
		}
		seen[card.Set.ID] = struct{}{}
		sets = append(sets, catalog.SetModel{
			ID:           card.Set.ID,
			Name:         card.Set.Name,
			Series:       card.Set.Series,
			PrintedTotal: card.Set.PrintedTotal,
			Total:        card.Set.Total,
			PtcgoCode:    card.Set.PtcgoCode,
			ReleaseDate:  card.Set.ReleaseDate,
			UpdatedAt:    card.Set.UpdatedAt,
			SymbolImage:  card.Set.SymbolImage,
			LogoImage:    card.Set.LogoImage,
		})
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "series", "printed_total", "total", "ptcgo_code",
			"release_date", "updated_at", "symbol_image", "logo_image",
		}),
	}).Create(&sets).Error
}

// upsertCardRows はカード本体をまとめてupsertします。IDは外部採番のため不変です。
func upsertCardRows(tx *gorm.DB, cards []entity.SeedCard) error {
	rows := make([]catalog.CardModel, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, catalog.CardModel{
			ID:                   card.ID,
			Name:                 card.Name,
			Number:               card.Number,
			Rarity:               card.Rarity,
			Supertype:            card.Supertype,
			HP:                   card.HP,
			Level:                card.Level,
			Artist:               card.Artist,
			FlavorText:           card.FlavorText,
			SetID:                card.Set.ID,
			ImageSmall:           card.ImageSmall,
			ImageLarge:           card.ImageLarge,
			EvolvesFrom:          card.EvolvesFrom,
			ConvertedRetreatCost: card.ConvertedRetreatCost,
			LegalityUnlimited:    card.LegalityUnlimited,
			LegalityExpanded:     card.LegalityExpanded,
		})
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "number", "rarity", "supertype", "hp", "level", "artist",
			"flavor_text", "set_id", "image_small", "image_large", "evolves_from",
			"converted_retreat_cost", "legality_unlimited", "legality_expanded", "updated_at",
		}),
	}).Create(&rows).Error
}

// upsertCardRelations はカード1件の関連レコードを投入します。
func upsertCardRelations(tx *gorm.DB, card entity.SeedCard) error {
	if len(card.Types) > 0 {
		rows := make([]catalog.CardTypeModel, 0, len(card.Types))
		for _, typ := range card.Types {
			rows = append(rows, catalog.CardTypeModel{CardID: card.ID, Type: typ})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_id"}, {Name: "type"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(card.Subtypes) > 0 {
		rows := make([]catalog.CardSubtypeModel, 0, len(card.Subtypes))
		for _, sub := range card.Subtypes {
			rows = append(rows, catalog.CardSubtypeModel{CardID: card.ID, Subtype: sub})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_id"}, {Name: "subtype"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return err
		}
	}

	if err := replaceAttacks(tx, card); err != nil {
		return err
	}
	if err := replaceAbilities(tx, card); err != nil {
		return err
	}

	if len(card.Weaknesses) > 0 {
		rows := make([]catalog.CardWeaknessModel, 0, len(card.Weaknesses))
		for _, w := range card.Weaknesses {
			rows = append(rows, catalog.CardWeaknessModel{CardID: card.ID, Type: w.Type, Value: w.Value})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_id"}, {Name: "type"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(card.Resistances) > 0 {
		rows := make([]catalog.CardResistanceModel, 0, len(card.Resistances))
		for _, res := range card.Resistances {
			rows = append(rows, catalog.CardResistanceModel{CardID: card.ID, Type: res.Type, Value: res.Value})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_id"}, {Name: "type"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(card.PokedexNumbers) > 0 {
		rows := make([]catalog.CardPokedexNumberModel, 0, len(card.PokedexNumbers))
		for _, n := range card.PokedexNumbers {
			rows = append(rows, catalog.CardPokedexNumberModel{CardID: card.ID, PokedexNumber: n})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_id"}, {Name: "pokedex_number"}},
			DoNothing: true,
		}).Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(card.Prices) > 0 {
		rows := make([]catalog.PriceModel, 0, len(card.Prices))
		for _, p := range card.Prices {
			rows = append(rows, catalog.PriceModel{
				CardID:    card.ID,
				Source:    p.Source,
				Variant:   p.Variant,
				Low:       p.Low,
				Mid:       p.Mid,
				High:      p.High,
				Market:    p.Market,
				DirectLow: p.DirectLow,
				UpdatedAt: p.UpdatedAt,
			})
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "card_id"}, {Name: "source"}, {Name: "variant"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"low", "mid", "high", "market", "direct_low", "updated_at",
			}),
		}).Create(&rows).Error; err != nil {
			return err
		}
	}

	return nil
}

// replaceAttacks はカードのワザとコスト列を削除してから挿入し直します。
// attack_order / cost_order が表示順を決めるため、upsertではなく全置換にしています。
func replaceAttacks(tx *gorm.DB, card entity.SeedCard) error {
	var oldIDs []uint
	if err := tx.Model(&catalog.AttackModel{}).
		Where("card_id = ?", card.ID).
		Pluck("id", &oldIDs).Error; err != nil {
		return err
	}
	if len(oldIDs) > 0 {
		if err := tx.Where("attack_id IN ?", oldIDs).Delete(&catalog.AttackCostModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("card_id = ?", card.ID).Delete(&catalog.AttackModel{}).Error; err != nil {
			return err
		}
	}

	for order, attack := range card.Attacks {
		row := catalog.AttackModel{
			CardID:              card.ID,
			Name:                attack.Name,
			Damage:              attack.Damage,
			Text:                attack.Text,
			ConvertedEnergyCost: attack.ConvertedEnergyCost,
			AttackOrder:         order,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for costOrder, energy := range attack.Cost {
			cost := catalog.AttackCostModel{
				AttackID:   row.ID,
				EnergyType: energy,
				CostOrder:  costOrder,
			}
			if err := tx.Create(&cost).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// replaceAbilities は特性を削除してから挿入し直します。ability_orderが表示順を決めます。
func replaceAbilities(tx *gorm.DB, card entity.SeedCard) error {
	if err := tx.Where("card_id = ?", card.ID).Delete(&catalog.AbilityModel{}).Error; err != nil {
		return err
	}
	for order, ability := range card.Abilities {
		row := catalog.AbilityModel{
			CardID:       card.ID,
			Name:         ability.Name,
			Text:         ability.Text,
			Type:         ability.Type,
			AbilityOrder: order,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
