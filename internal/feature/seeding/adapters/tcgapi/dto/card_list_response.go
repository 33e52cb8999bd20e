// Package dto defines the JSON shapes returned by the external card data API.
// The same document shape is used by local dump files, so the file source
// shares these types.
package dto

import (
	"sort"
	"time"

	"card_backend/internal/feature/seeding/domain/entity"
)

// CardListResponse is one page of the card API (also the shape of dump files).
type CardListResponse struct {
	Data       []CardObject `json:"data"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	Count      int          `json:"count"`
	TotalCount int          `json:"totalCount"`
}

// CardObject is one card as delivered by the API.
type CardObject struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Number               string            `json:"number"`
	Rarity               *string           `json:"rarity"`
	Supertype            string            `json:"supertype"`
	HP                   *string           `json:"hp"`
	Level                *string           `json:"level"`
	Artist               *string           `json:"artist"`
	FlavorText           *string           `json:"flavorText"`
	EvolvesFrom          *string           `json:"evolvesFrom"`
	ConvertedRetreatCost *int              `json:"convertedRetreatCost"`
	Types                []string          `json:"types"`
	Subtypes             []string          `json:"subtypes"`
	Attacks              []AttackObject    `json:"attacks"`
	Abilities            []AbilityObject   `json:"abilities"`
	Weaknesses           []TypeValueObject `json:"weaknesses"`
	Resistances          []TypeValueObject `json:"resistances"`
	PokedexNumbers       []int             `json:"nationalPokedexNumbers"`
	Set                  SetObject         `json:"set"`
	Images               ImagesObject      `json:"images"`
	Legalities           *LegalitiesObject `json:"legalities"`
	TCGPlayer            *TCGPlayerObject  `json:"tcgplayer"`
	Cardmarket           *CardmarketObject `json:"cardmarket"`
}

// SetObject is the set block nested in a card object.
type SetObject struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Series       string          `json:"series"`
	PrintedTotal *int            `json:"printedTotal"`
	Total        *int            `json:"total"`
	PtcgoCode    *string         `json:"ptcgoCode"`
	ReleaseDate  *string         `json:"releaseDate"`
	UpdatedAt    *string         `json:"updatedAt"`
	Images       SetImagesObject `json:"images"`
}

// SetImagesObject holds the set symbol and logo URLs.
type SetImagesObject struct {
	Symbol *string `json:"symbol"`
	Logo   *string `json:"logo"`
}

// ImagesObject holds the card image URLs.
type ImagesObject struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// LegalitiesObject holds per-format legality labels.
type LegalitiesObject struct {
	Unlimited *string `json:"unlimited"`
	Expanded  *string `json:"expanded"`
}

// AttackObject is one attack with its cost sequence in display order.
type AttackObject struct {
	Name                string   `json:"name"`
	Cost                []string `json:"cost"`
	Damage              *string  `json:"damage"`
	Text                *string  `json:"text"`
	ConvertedEnergyCost *int     `json:"convertedEnergyCost"`
}

// AbilityObject is one ability of a card.
type AbilityObject struct {
	Name string  `json:"name"`
	Text string  `json:"text"`
	Type *string `json:"type"`
}

// TypeValueObject is a (type, value) pair for weaknesses and resistances.
type TypeValueObject struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// TCGPlayerObject holds per-variant price quotes from TCGPlayer.
type TCGPlayerObject struct {
	URL       *string                      `json:"url"`
	UpdatedAt *string                      `json:"updatedAt"`
	Prices    map[string]TCGPlayerPriceObj `json:"prices"`
}

// TCGPlayerPriceObj is one variant's quote.
type TCGPlayerPriceObj struct {
	Low       *float64 `json:"low"`
	Mid       *float64 `json:"mid"`
	High      *float64 `json:"high"`
	Market    *float64 `json:"market"`
	DirectLow *float64 `json:"directLow"`
}

// CardmarketObject holds the Cardmarket price block.
type CardmarketObject struct {
	URL       *string             `json:"url"`
	UpdatedAt *string             `json:"updatedAt"`
	Prices    *CardmarketPriceObj `json:"prices"`
}

// CardmarketPriceObj is Cardmarket's flat price structure. Only the fields the
// catalog stores are mapped; the reverse-holo fields are deliberately dropped.
type CardmarketPriceObj struct {
	AverageSellPrice *float64 `json:"averageSellPrice"`
	LowPrice         *float64 `json:"lowPrice"`
	TrendPrice       *float64 `json:"trendPrice"`
}

// ToEntity converts an API card object into the seeding domain entity.
func (c CardObject) ToEntity() entity.SeedCard {
	card := entity.SeedCard{
		ID:                   c.ID,
		Name:                 c.Name,
		Number:               c.Number,
		Rarity:               c.Rarity,
		Supertype:            c.Supertype,
		HP:                   c.HP,
		Level:                c.Level,
		Artist:               c.Artist,
		FlavorText:           c.FlavorText,
		EvolvesFrom:          c.EvolvesFrom,
		ConvertedRetreatCost: c.ConvertedRetreatCost,
		ImageSmall:           c.Images.Small,
		ImageLarge:           c.Images.Large,
		Types:                c.Types,
		Subtypes:             c.Subtypes,
		PokedexNumbers:       c.PokedexNumbers,
		Set: entity.SeedSet{
			ID:           c.Set.ID,
			Name:         c.Set.Name,
			Series:       c.Set.Series,
			PrintedTotal: c.Set.PrintedTotal,
			Total:        c.Set.Total,
			PtcgoCode:    c.Set.PtcgoCode,
			ReleaseDate:  c.Set.ReleaseDate,
			UpdatedAt:    parseTimestamp(c.Set.UpdatedAt),
			SymbolImage:  c.Set.Images.Symbol,
			LogoImage:    c.Set.Images.Logo,
		},
	}

	if c.Legalities != nil {
		card.LegalityUnlimited = c.Legalities.Unlimited
		card.LegalityExpanded = c.Legalities.Expanded
	}

	for _, a := range c.Attacks {
		cost := a.Cost
		if cost == nil {
			cost = []string{}
		}
		card.Attacks = append(card.Attacks, entity.SeedAttack{
			Name:                a.Name,
			Cost:                cost,
			Damage:              a.Damage,
			Text:                a.Text,
			ConvertedEnergyCost: a.ConvertedEnergyCost,
		})
	}
	for _, a := range c.Abilities {
		card.Abilities = append(card.Abilities, entity.SeedAbility{Name: a.Name, Text: a.Text, Type: a.Type})
	}
	for _, w := range c.Weaknesses {
		card.Weaknesses = append(card.Weaknesses, entity.SeedTypeValue{Type: w.Type, Value: w.Value})
	}
	for _, r := range c.Resistances {
		card.Resistances = append(card.Resistances, entity.SeedTypeValue{Type: r.Type, Value: r.Value})
	}

	card.Prices = c.prices()
	return card
}

// prices flattens the provider blocks into price rows.
//
// TCGPlayer delivers one quote per printing variant; variants are emitted in
// sorted key order so repeated runs produce the same row order. Cardmarket's
// flat block collapses into a single "standard" variant (low=lowPrice,
// mid=averageSellPrice, market=trendPrice); the reverse-holo fields are
// intentionally not stored.
func (c CardObject) prices() []entity.SeedPrice {
	var prices []entity.SeedPrice

	if c.TCGPlayer != nil && len(c.TCGPlayer.Prices) > 0 {
		updated := parseTimestamp(c.TCGPlayer.UpdatedAt)
		variants := make([]string, 0, len(c.TCGPlayer.Prices))
		for variant := range c.TCGPlayer.Prices {
			variants = append(variants, variant)
		}
		sort.Strings(variants)
		for _, variant := range variants {
			quote := c.TCGPlayer.Prices[variant]
			prices = append(prices, entity.SeedPrice{
				Source:    "tcgplayer",
				Variant:   variant,
				Low:       quote.Low,
				Mid:       quote.Mid,
				High:      quote.High,
				Market:    quote.Market,
				DirectLow: quote.DirectLow,
				UpdatedAt: updated,
			})
		}
	}

	if c.Cardmarket != nil && c.Cardmarket.Prices != nil {
		prices = append(prices, entity.SeedPrice{
			Source:    "cardmarket",
			Variant:   "standard",
			Low:       c.Cardmarket.Prices.LowPrice,
			Mid:       c.Cardmarket.Prices.AverageSellPrice,
			Market:    c.Cardmarket.Prices.TrendPrice,
			UpdatedAt: parseTimestamp(c.Cardmarket.UpdatedAt),
		})
	}

	return prices
}

// parseTimestamp parses the API's "2024/03/01" and RFC3339 timestamp spellings.
func parseTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range []string{"2006/01/02 15:04:05", "2006/01/02", time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}
