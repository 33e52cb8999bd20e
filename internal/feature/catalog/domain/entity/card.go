// Package entity はcatalogフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// CardSummary は一覧表示用のカード1件分のビューです。
// セット名と全価格行の最高値を非正規化して持ちます。
type CardSummary struct {
	ID            string
	Name          string
	SetName       string
	Rarity        *string
	ImageSmallURL string
	ImageLargeURL string
	Supertype     string
	Number        string
	HP            *string
	Artist        *string
	HighestPrice  float64
}

// CardPage はページネーションされた一覧結果です。
// Total はフィルタ条件に一致する全件数で、ページ位置に依存しません。
type CardPage struct {
	Cards []CardSummary
	Total int64
}

// Attack はカードのワザです。Cost はエネルギーコストの表示順リストです。
type Attack struct {
	Name                string
	Cost                []string
	Damage              *string
	Text                *string
	ConvertedEnergyCost *int
}

// Ability はカードの特性です。
type Ability struct {
	Name string
	Text string
	Type *string
}

// Weakness はカードの弱点（タイプと倍率）です。
type Weakness struct {
	Type  string
	Value string
}

// Resistance はカードの抵抗力（タイプと軽減値）です。
type Resistance struct {
	Type  string
	Value string
}

// Price は価格プロバイダーと印刷バリアントごとの価格情報です。
type Price struct {
	Source    string
	Variant   string
	Low       *float64
	Mid       *float64
	High      *float64
	Market    *float64
	DirectLow *float64
	UpdatedAt *time.Time
}

// CardDetail はカード1件の全関連情報をマージした非正規化ビューです。
// コレクション系フィールドは行が存在しない場合でも空スライスになります（nilにはなりません）。
type CardDetail struct {
	ID                   string
	Name                 string
	Number               string
	Rarity               *string
	Supertype            string
	HP                   *string
	Level                *string
	Artist               *string
	FlavorText           *string
	EvolvesFrom          *string
	ConvertedRetreatCost *int
	LegalityUnlimited    *string
	LegalityExpanded     *string
	ImageSmallURL        string
	ImageLargeURL        string

	SetName        string
	SetSeries      string
	SetReleaseDate *string

	Types                  []string
	Subtypes               []string
	Attacks                []Attack
	Abilities              []Ability
	Weaknesses             []Weakness
	Resistances            []Resistance
	NationalPokedexNumbers []int
	Prices                 []Price
}
