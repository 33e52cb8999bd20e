// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import "time"

// SetModel はsetsテーブルのGORMモデルです。IDは外部データソースで採番された文字列です。
type SetModel struct {
	ID           string `gorm:"primaryKey;size:32"`
	Name         string `gorm:"size:255;not null;index"`
	Series       string `gorm:"size:255;not null"`
	PrintedTotal *int
	Total        *int
	PtcgoCode    *string `gorm:"size:16"`
	ReleaseDate  *string `gorm:"size:16"`
	UpdatedAt    *time.Time
	SymbolImage  *string `gorm:"size:512"`
	LogoImage    *string `gorm:"size:512"`
}

func (SetModel) TableName() string {
	return "sets"
}

// CardModel はcardsテーブルのGORMモデルです。
// IDは外部データソースで採番された文字列で、シード後は不変です。
type CardModel struct {
	ID                   string  `gorm:"primaryKey;size:32"`
	Name                 string  `gorm:"size:255;not null;index"`
	Number               string  `gorm:"size:32;not null"`
	Rarity               *string `gorm:"size:64;index"`
	Supertype            string  `gorm:"size:32;not null;index"`
	HP                   *string `gorm:"column:hp;size:16"`
	Level                *string `gorm:"size:16"`
	Artist               *string `gorm:"size:255"`
	FlavorText           *string `gorm:"type:text"`
	SetID                string  `gorm:"size:32;not null;index"`
	ImageSmall           string  `gorm:"size:512;not null"`
	ImageLarge           string  `gorm:"size:512;not null"`
	EvolvesFrom          *string `gorm:"size:255"`
	ConvertedRetreatCost *int
	LegalityUnlimited    *string `gorm:"size:32"`
	LegalityExpanded     *string `gorm:"size:32"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (CardModel) TableName() string {
	return "cards"
}

// CardTypeModel はカードとタイプラベル（例: "Fire"）の多対多関係です。
type CardTypeModel struct {
	ID     uint   `gorm:"primaryKey"`
	CardID string `gorm:"size:32;not null;uniqueIndex:card_type_uniq,priority:1"`
	Type   string `gorm:"size:32;not null;uniqueIndex:card_type_uniq,priority:2"`
}

func (CardTypeModel) TableName() string {
	return "card_types"
}

// CardSubtypeModel はカードとサブタイプラベル（例: "Basic"）の多対多関係です。
type CardSubtypeModel struct {
	ID      uint   `gorm:"primaryKey"`
	CardID  string `gorm:"size:32;not null;uniqueIndex:card_subtype_uniq,priority:1"`
	Subtype string `gorm:"size:64;not null;uniqueIndex:card_subtype_uniq,priority:2"`
}

func (CardSubtypeModel) TableName() string {
	return "card_subtypes"
}

// AttackModel はワザのGORMモデルです。AttackOrderがカード内での表示順を決めます。
type AttackModel struct {
	ID                  uint    `gorm:"primaryKey"`
	CardID              string  `gorm:"size:32;not null;index"`
	Name                string  `gorm:"size:255;not null"`
	Damage              *string `gorm:"size:16"` // "20+" のような非数値も格納するため文字列
	Text                *string `gorm:"type:text"`
	ConvertedEnergyCost *int
	AttackOrder         int `gorm:"not null"`
}

func (AttackModel) TableName() string {
	return "attacks"
}

// AttackCostModel はワザのエネルギーコスト1つ分です。
// CostOrderはコスト列の表示順で、意味を持ちます（往復で保存されます）。
type AttackCostModel struct {
	ID         uint   `gorm:"primaryKey"`
	AttackID   uint   `gorm:"not null;uniqueIndex:attack_cost_uniq,priority:1"`
	EnergyType string `gorm:"size:32;not null;uniqueIndex:attack_cost_uniq,priority:2"`
	CostOrder  int    `gorm:"not null;uniqueIndex:attack_cost_uniq,priority:3"`
}

func (AttackCostModel) TableName() string {
	return "attack_costs"
}

// AbilityModel は特性のGORMモデルです。
type AbilityModel struct {
	ID           uint    `gorm:"primaryKey"`
	CardID       string  `gorm:"size:32;not null;index"`
	Name         string  `gorm:"size:255;not null"`
	Text         string  `gorm:"type:text;not null"`
	Type         *string `gorm:"size:64"`
	AbilityOrder int     `gorm:"not null"`
}

func (AbilityModel) TableName() string {
	return "abilities"
}

// CardWeaknessModel は弱点のGORMモデルです。(card_id, type)で一意です。
type CardWeaknessModel struct {
	ID     uint   `gorm:"primaryKey"`
	CardID string `gorm:"size:32;not null;uniqueIndex:card_weakness_uniq,priority:1"`
	Type   string `gorm:"size:32;not null;uniqueIndex:card_weakness_uniq,priority:2"`
	Value  string `gorm:"size:16;not null"`
}

func (CardWeaknessModel) TableName() string {
	return "card_weaknesses"
}

// CardResistanceModel は抵抗力のGORMモデルです。(card_id, type)で一意です。
type CardResistanceModel struct {
	ID     uint   `gorm:"primaryKey"`
	CardID string `gorm:"size:32;not null;uniqueIndex:card_resistance_uniq,priority:1"`
	Type   string `gorm:"size:32;not null;uniqueIndex:card_resistance_uniq,priority:2"`
	Value  string `gorm:"size:16;not null"`
}

func (CardResistanceModel) TableName() string {
	return "card_resistances"
}

// CardPokedexNumberModel はカードと全国図鑑番号の多対多関係です。
type CardPokedexNumberModel struct {
	ID            uint   `gorm:"primaryKey"`
	CardID        string `gorm:"size:32;not null;uniqueIndex:card_pokedex_uniq,priority:1"`
	PokedexNumber int    `gorm:"not null;uniqueIndex:card_pokedex_uniq,priority:2"`
}

func (CardPokedexNumberModel) TableName() string {
	return "card_pokedex_numbers"
}

// PriceModel は価格のGORMモデルです。(card_id, source, variant)で一意で、
// 再シード時は数値フィールドとタイムスタンプのみ更新されます。
type PriceModel struct {
	ID        uint   `gorm:"primaryKey"`
	CardID    string `gorm:"size:32;not null;uniqueIndex:price_card_src_var,priority:1"`
	Source    string `gorm:"size:32;not null;uniqueIndex:price_card_src_var,priority:2"`
	Variant   string `gorm:"size:32;not null;uniqueIndex:price_card_src_var,priority:3"`
	Low       *float64
	Mid       *float64
	High      *float64
	Market    *float64
	DirectLow *float64
	UpdatedAt *time.Time
}

func (PriceModel) TableName() string {
	return "prices"
}
