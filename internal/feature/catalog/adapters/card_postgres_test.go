package adapters

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"card_backend/internal/feature/catalog/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// cache=shared keeps the database visible across pooled connections, which
// matters because ListPage and FindByID issue queries concurrently.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&SetModel{},
		&CardModel{},
		&CardTypeModel{},
		&CardSubtypeModel{},
		&AttackModel{},
		&AttackCostModel{},
		&AbilityModel{},
		&CardWeaknessModel{},
		&CardResistanceModel{},
		&CardPokedexNumberModel{},
		&PriceModel{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func strp(s string) *string { return &s }

func intp(n int) *int { return &n }

func f64p(f float64) *float64 { return &f }

func timep(t time.Time) *time.Time { return &t }

// seedCatalog inserts a small fixture catalog: two sets, three Pokémon,
// one Trainer card, attacks with ordered costs, and prices for two cards.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	sets := []SetModel{
		{ID: "base1", Name: "Base", Series: "Base", ReleaseDate: strp("1999/01/09")},
		{ID: "jungle", Name: "Jungle", Series: "Base", ReleaseDate: strp("1999/06/16")},
	}
	require.NoError(t, db.Create(&sets).Error, "failed to seed sets")

	cards := []CardModel{
		{
			ID: "base1-4", Name: "Charizard", Number: "4",
			Rarity: strp("Rare Holo"), Supertype: "Pokémon",
			HP: strp("120"), Artist: strp("Mitsuhiro Arita"),
			SetID: "base1", ImageSmall: "https://img/base1-4.png", ImageLarge: "https://img/base1-4_hires.png",
			EvolvesFrom: strp("Charmeleon"), ConvertedRetreatCost: intp(3),
			LegalityUnlimited: strp("Legal"),
		},
		{
			ID: "base1-46", Name: "Charmander", Number: "46",
			Rarity: strp("Common"), Supertype: "Pokémon",
			HP: strp("50"),
			SetID: "base1", ImageSmall: "https://img/base1-46.png", ImageLarge: "https://img/base1-46_hires.png",
		},
		{
			ID: "jungle-1", Name: "Clefable", Number: "1",
			Rarity: strp("Rare Holo"), Supertype: "Pokémon",
			HP: strp("70"),
			SetID: "jungle", ImageSmall: "https://img/jungle-1.png", ImageLarge: "https://img/jungle-1_hires.png",
		},
		{
			ID: "base1-91", Name: "Bill", Number: "91",
			Rarity: strp("Common"), Supertype: "Trainer",
			SetID: "base1", ImageSmall: "https://img/base1-91.png", ImageLarge: "https://img/base1-91_hires.png",
		},
	}
	require.NoError(t, db.Create(&cards).Error, "failed to seed cards")

	require.NoError(t, db.Create(&[]CardTypeModel{
		{CardID: "base1-4", Type: "Fire"},
		{CardID: "base1-46", Type: "Fire"},
	}).Error)
	require.NoError(t, db.Create(&[]CardSubtypeModel{
		{CardID: "base1-4", Subtype: "Stage 2"},
		{CardID: "base1-46", Subtype: "Basic"},
	}).Error)

	// Charizard: one attack with a four-energy cost sequence
	fireSpin := AttackModel{
		CardID: "base1-4", Name: "Fire Spin",
		Damage: strp("100"), Text: strp("Discard 2 Energy cards attached to Charizard in order to use this attack."),
		ConvertedEnergyCost: intp(4), AttackOrder: 0,
	}
	require.NoError(t, db.Create(&fireSpin).Error)
	for i, energy := range []string{"Fire", "Fire", "Fire", "Fire"} {
		require.NoError(t, db.Create(&AttackCostModel{AttackID: fireSpin.ID, EnergyType: energy, CostOrder: i}).Error)
	}

	// Charmander: two attacks, the second with a mixed-order cost sequence
	scratch := AttackModel{CardID: "base1-46", Name: "Scratch", Damage: strp("10"), ConvertedEnergyCost: intp(1), AttackOrder: 0}
	require.NoError(t, db.Create(&scratch).Error)
	require.NoError(t, db.Create(&AttackCostModel{AttackID: scratch.ID, EnergyType: "Colorless", CostOrder: 0}).Error)

	ember := AttackModel{CardID: "base1-46", Name: "Ember", Damage: strp("30"), ConvertedEnergyCost: intp(3), AttackOrder: 1}
	require.NoError(t, db.Create(&ember).Error)
	for i, energy := range []string{"Fire", "Colorless", "Colorless"} {
		require.NoError(t, db.Create(&AttackCostModel{AttackID: ember.ID, EnergyType: energy, CostOrder: i}).Error)
	}

	require.NoError(t, db.Create(&AbilityModel{
		CardID: "base1-4", Name: "Energy Burn", Text: "All Energy attached to Charizard counts as Fire Energy.",
		Type: strp("Pokémon Power"), AbilityOrder: 0,
	}).Error)

	require.NoError(t, db.Create(&CardWeaknessModel{CardID: "base1-4", Type: "Water", Value: "×2"}).Error)
	require.NoError(t, db.Create(&CardResistanceModel{CardID: "base1-4", Type: "Fighting", Value: "-30"}).Error)
	require.NoError(t, db.Create(&CardPokedexNumberModel{CardID: "base1-4", PokedexNumber: 6}).Error)

	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]PriceModel{
		{CardID: "base1-4", Source: "tcgplayer", Variant: "holofoil", Low: f64p(180), Mid: f64p(260), High: f64p(400), Market: f64p(310.55), UpdatedAt: timep(updated)},
		{CardID: "base1-4", Source: "cardmarket", Variant: "standard", Low: f64p(150), Mid: f64p(220), High: f64p(330), UpdatedAt: timep(updated)},
		{CardID: "base1-46", Source: "tcgplayer", Variant: "normal", Low: f64p(0.5), Mid: f64p(1.2), High: f64p(2.5), UpdatedAt: timep(updated)},
	}).Error)
}

func TestCardPostgres_ListPage(t *testing.T) {
	t.Run("no filter returns all cards ordered by name", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		page, err := repo.ListPage(context.Background(), usecase.CardFilter{}, 100, 0)

		require.NoError(t, err)
		assert.EqualValues(t, 4, page.Total)
		names := make([]string, 0, len(page.Cards))
		for _, c := range page.Cards {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Bill", "Charizard", "Charmander", "Clefable"}, names)
	})

	t.Run("total is invariant across pages", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		first, err := repo.ListPage(context.Background(), usecase.CardFilter{}, 2, 0)
		require.NoError(t, err)
		second, err := repo.ListPage(context.Background(), usecase.CardFilter{}, 2, 2)
		require.NoError(t, err)

		assert.Len(t, first.Cards, 2)
		assert.Len(t, second.Cards, 2)
		assert.Equal(t, first.Total, second.Total)
		assert.Equal(t, "Bill", first.Cards[0].Name)
		assert.Equal(t, "Charmander", second.Cards[0].Name)
	})

	t.Run("out-of-range page yields empty list with correct total", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		page, err := repo.ListPage(context.Background(), usecase.CardFilter{}, 10, 1000)

		require.NoError(t, err)
		assert.Empty(t, page.Cards)
		assert.EqualValues(t, 4, page.Total)
	})

	t.Run("search matches name substring case-insensitively", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		page, err := repo.ListPage(context.Background(), usecase.CardFilter{Search: "CHAR"}, 100, 0)

		require.NoError(t, err)
		assert.EqualValues(t, 2, page.Total)
		assert.Equal(t, "Charizard", page.Cards[0].Name)
		assert.Equal(t, "Charmander", page.Cards[1].Name)
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		searchOnly, err := repo.ListPage(context.Background(), usecase.CardFilter{Search: "char"}, 100, 0)
		require.NoError(t, err)
		both, err := repo.ListPage(context.Background(), usecase.CardFilter{Search: "char", Rarity: "Rare Holo"}, 100, 0)
		require.NoError(t, err)

		assert.EqualValues(t, 2, searchOnly.Total)
		assert.EqualValues(t, 1, both.Total)
		assert.LessOrEqual(t, both.Total, searchOnly.Total, "adding a filter must never widen the result")
		assert.Equal(t, "base1-4", both.Cards[0].ID)
	})

	t.Run("set and supertype filters", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		bySet, err := repo.ListPage(context.Background(), usecase.CardFilter{SetName: "Jungle"}, 100, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, bySet.Total)
		assert.Equal(t, "Clefable", bySet.Cards[0].Name)
		assert.Equal(t, "Jungle", bySet.Cards[0].SetName)

		trainers, err := repo.ListPage(context.Background(), usecase.CardFilter{Supertype: "Trainer"}, 100, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, trainers.Total)
		assert.Equal(t, "Bill", trainers.Cards[0].Name)
	})

	t.Run("highest price aggregates max over price rows, zero when absent", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		page, err := repo.ListPage(context.Background(), usecase.CardFilter{}, 100, 0)
		require.NoError(t, err)

		byName := map[string]float64{}
		for _, c := range page.Cards {
			byName[c.Name] = c.HighestPrice
		}
		assert.Equal(t, 400.0, byName["Charizard"], "max over both providers")
		assert.Equal(t, 2.5, byName["Charmander"])
		assert.Equal(t, 0.0, byName["Bill"], "cards without price rows report 0")
	})
}

func TestCardPostgres_FindByID(t *testing.T) {
	t.Run("assembles full denormalized detail", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		detail, err := repo.FindByID(context.Background(), "base1-4")

		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, "Charizard", detail.Name)
		assert.Equal(t, "Base", detail.SetName)
		assert.Equal(t, "Base", detail.SetSeries)
		require.NotNil(t, detail.SetReleaseDate)
		assert.Equal(t, "1999/01/09", *detail.SetReleaseDate)
		assert.Equal(t, []string{"Fire"}, detail.Types)
		assert.Equal(t, []string{"Stage 2"}, detail.Subtypes)

		require.Len(t, detail.Attacks, 1)
		assert.Equal(t, "Fire Spin", detail.Attacks[0].Name)
		assert.Equal(t, []string{"Fire", "Fire", "Fire", "Fire"}, detail.Attacks[0].Cost)

		require.Len(t, detail.Abilities, 1)
		assert.Equal(t, "Energy Burn", detail.Abilities[0].Name)

		require.Len(t, detail.Weaknesses, 1)
		assert.Equal(t, "Water", detail.Weaknesses[0].Type)
		require.Len(t, detail.Resistances, 1)
		assert.Equal(t, "-30", detail.Resistances[0].Value)
		assert.Equal(t, []int{6}, detail.NationalPokedexNumbers)

		// prices ordered by source then variant
		require.Len(t, detail.Prices, 2)
		assert.Equal(t, "cardmarket", detail.Prices[0].Source)
		assert.Equal(t, "tcgplayer", detail.Prices[1].Source)
	})

	t.Run("attack cost order round-trips", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		detail, err := repo.FindByID(context.Background(), "base1-46")

		require.NoError(t, err)
		require.Len(t, detail.Attacks, 2)
		assert.Equal(t, "Scratch", detail.Attacks[0].Name)
		assert.Equal(t, "Ember", detail.Attacks[1].Name)
		assert.Equal(t, []string{"Fire", "Colorless", "Colorless"}, detail.Attacks[1].Cost,
			"cost sequence must preserve seeded order")
	})

	t.Run("card without children returns empty collections, not nil", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		detail, err := repo.FindByID(context.Background(), "base1-91")

		require.NoError(t, err)
		assert.NotNil(t, detail.Attacks)
		assert.Empty(t, detail.Attacks)
		assert.NotNil(t, detail.Types)
		assert.Empty(t, detail.Types)
		assert.NotNil(t, detail.Abilities)
		assert.Empty(t, detail.Abilities)
		assert.NotNil(t, detail.Weaknesses)
		assert.Empty(t, detail.Weaknesses)
		assert.NotNil(t, detail.Resistances)
		assert.Empty(t, detail.Resistances)
		assert.NotNil(t, detail.NationalPokedexNumbers)
		assert.Empty(t, detail.NationalPokedexNumbers)
		assert.NotNil(t, detail.Prices)
		assert.Empty(t, detail.Prices)
	})

	t.Run("unknown id returns ErrCardNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)
		repo := NewCardRepository(db)

		detail, err := repo.FindByID(context.Background(), "nonexistent-id")

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, usecase.ErrCardNotFound)
	})
}

func TestCardPostgres_Lookups(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewCardRepository(db)

	t.Run("set names are sorted and deduplicated", func(t *testing.T) {
		sets, err := repo.ListSetNames(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Base", "Jungle"}, sets)
	})

	t.Run("rarities are distinct even when shared by many cards", func(t *testing.T) {
		rarities, err := repo.ListRarities(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Common", "Rare Holo"}, rarities)
	})

	t.Run("supertypes", func(t *testing.T) {
		supertypes, err := repo.ListSupertypes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Pokémon", "Trainer"}, supertypes)
	})
}
