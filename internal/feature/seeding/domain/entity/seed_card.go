// Package entity defines the domain entities for the seeding feature.
// A SeedCard is one fully nested card record as delivered by the external
// card data source, before it is flattened into relational rows.
package entity

import "time"

// SeedSet is the set a seeded card belongs to.
type SeedSet struct {
	ID           string
	Name         string
	Series       string
	PrintedTotal *int
	Total        *int
	PtcgoCode    *string
	ReleaseDate  *string
	UpdatedAt    *time.Time
	SymbolImage  *string
	LogoImage    *string
}

// SeedAttack is one attack with its ordered energy cost sequence.
type SeedAttack struct {
	Name                string
	Cost                []string
	Damage              *string
	Text                *string
	ConvertedEnergyCost *int
}

// SeedAbility is one ability of a seeded card.
type SeedAbility struct {
	Name string
	Text string
	Type *string
}

// SeedTypeValue is a (type, value) pair for weaknesses and resistances.
type SeedTypeValue struct {
	Type  string
	Value string
}

// SeedPrice is one price quote keyed by provider source and printing variant.
type SeedPrice struct {
	Source    string
	Variant   string
	Low       *float64
	Mid       *float64
	High      *float64
	Market    *float64
	DirectLow *float64
	UpdatedAt *time.Time
}

// SeedCard is one card with all of its related records.
type SeedCard struct {
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
	ImageSmall           string
	ImageLarge           string

	Set SeedSet

	Types          []string
	Subtypes       []string
	Attacks        []SeedAttack
	Abilities      []SeedAbility
	Weaknesses     []SeedTypeValue
	Resistances    []SeedTypeValue
	PokedexNumbers []int
	Prices         []SeedPrice
}
