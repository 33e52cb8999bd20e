// Package dto defines data transfer objects for the catalog HTTP API.
package dto

import "time"

// CardItem represents one card in the paginated list response.
// Field names follow the column aliases the web client already consumes.
type CardItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SetName       string  `json:"set_name"`
	Rarity        *string `json:"rarity"`
	ImageSmallURL string  `json:"image_small_url"`
	ImageLargeURL string  `json:"image_large_url"`
	Supertype     string  `json:"supertype"`
	Number        string  `json:"number"`
	HP            *string `json:"hp"`
	Artist        *string `json:"artist"`
	HighestPrice  float64 `json:"highest_price"`
}

// CardListResponse is the envelope for GET /cards.
type CardListResponse struct {
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Total int64      `json:"total"`
	Data  []CardItem `json:"data"`
}

// AttackItem is one attack with its ordered energy cost sequence.
type AttackItem struct {
	Name                string   `json:"name"`
	Cost                []string `json:"cost"`
	Damage              *string  `json:"damage"`
	Text                *string  `json:"text"`
	ConvertedEnergyCost *int     `json:"convertedEnergyCost"`
}

// AbilityItem is one ability of a card.
type AbilityItem struct {
	Name string  `json:"name"`
	Text string  `json:"text"`
	Type *string `json:"type"`
}

// TypeValueItem is a (type, value) pair used for weaknesses and resistances.
type TypeValueItem struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// PriceItem is one price quote keyed by provider and printing variant.
type PriceItem struct {
	Source    string     `json:"source"`
	Variant   string     `json:"variant"`
	Low       *float64   `json:"low"`
	Mid       *float64   `json:"mid"`
	High      *float64   `json:"high"`
	Market    *float64   `json:"market"`
	DirectLow *float64   `json:"direct_low"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// CardDetailResponse is the denormalized single-card view for GET /cards/:id.
// Collection fields are always present, empty arrays when the card has no such rows.
type CardDetailResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Number               string  `json:"number"`
	Rarity               *string `json:"rarity"`
	Supertype            string  `json:"supertype"`
	HP                   *string `json:"hp"`
	Level                *string `json:"level"`
	Artist               *string `json:"artist"`
	FlavorText           *string `json:"flavor_text"`
	EvolvesFrom          *string `json:"evolves_from"`
	ConvertedRetreatCost *int    `json:"converted_retreat_cost"`
	LegalityUnlimited    *string `json:"legality_unlimited"`
	LegalityExpanded     *string `json:"legality_expanded"`
	ImageSmallURL        string  `json:"image_small_url"`
	ImageLargeURL        string  `json:"image_large_url"`

	SetName        string  `json:"set_name"`
	SetSeries      string  `json:"set_series"`
	SetReleaseDate *string `json:"set_release_date"`

	Types                  []string        `json:"types"`
	Subtypes               []string        `json:"subtypes"`
	Attacks                []AttackItem    `json:"attacks"`
	Abilities              []AbilityItem   `json:"abilities"`
	Weaknesses             []TypeValueItem `json:"weaknesses"`
	Resistances            []TypeValueItem `json:"resistances"`
	NationalPokedexNumbers []int           `json:"nationalPokedexNumbers"`
	Prices                 []PriceItem     `json:"prices"`
}

// SetListResponse is the envelope for GET /cards/sets.
type SetListResponse struct {
	Sets []string `json:"sets"`
}

// RarityListResponse is the envelope for GET /cards/rarities.
type RarityListResponse struct {
	Rarities []string `json:"rarities"`
}

// TypeListResponse is the envelope for GET /cards/types.
type TypeListResponse struct {
	Types []string `json:"types"`
}
