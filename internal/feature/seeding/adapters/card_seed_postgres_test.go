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

	catalog "card_backend/internal/feature/catalog/adapters"
	"card_backend/internal/feature/seeding/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:seed_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&catalog.SetModel{},
		&catalog.CardModel{},
		&catalog.CardTypeModel{},
		&catalog.CardSubtypeModel{},
		&catalog.AttackModel{},
		&catalog.AttackCostModel{},
		&catalog.AbilityModel{},
		&catalog.CardWeaknessModel{},
		&catalog.CardResistanceModel{},
		&catalog.CardPokedexNumberModel{},
		&catalog.PriceModel{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func strp(s string) *string { return &s }

func intp(n int) *int { return &n }

func f64p(f float64) *float64 { return &f }

func fixtureCard(high float64) entity.SeedCard {
	updated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return entity.SeedCard{
		ID:         "base1-46",
		Name:       "Charmander",
		Number:     "46",
		Rarity:     strp("Common"),
		Supertype:  "Pokémon",
		HP:         strp("50"),
		ImageSmall: "https://img/base1-46.png",
		ImageLarge: "https://img/base1-46_hires.png",
		Set: entity.SeedSet{
			ID:     "base1",
			Name:   "Base",
			Series: "Base",
		},
		Types:    []string{"Fire"},
		Subtypes: []string{"Basic"},
		Attacks: []entity.SeedAttack{
			{Name: "Scratch", Cost: []string{"Colorless"}, Damage: strp("10"), ConvertedEnergyCost: intp(1)},
			{Name: "Ember", Cost: []string{"Fire", "Colorless", "Colorless"}, Damage: strp("30"), ConvertedEnergyCost: intp(3)},
		},
		Weaknesses:     []entity.SeedTypeValue{{Type: "Water", Value: "×2"}},
		PokedexNumbers: []int{4},
		Prices: []entity.SeedPrice{
			{Source: "tcgplayer", Variant: "normal", Low: f64p(0.5), Mid: f64p(1.2), High: f64p(high), UpdatedAt: &updated},
		},
	}
}

func TestCardSeedPostgres_UpsertCards(t *testing.T) {
	t.Run("first seed inserts card with all relations", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSeedRepository(db)

		err := repo.UpsertCards(context.Background(), []entity.SeedCard{fixtureCard(2.5)})
		require.NoError(t, err)

		var card catalog.CardModel
		require.NoError(t, db.First(&card, "id = ?", "base1-46").Error)
		assert.Equal(t, "Charmander", card.Name)
		assert.Equal(t, "base1", card.SetID)

		var attackCount, costCount, typeCount int64
		require.NoError(t, db.Model(&catalog.AttackModel{}).Where("card_id = ?", "base1-46").Count(&attackCount).Error)
		require.NoError(t, db.Model(&catalog.AttackCostModel{}).Count(&costCount).Error)
		require.NoError(t, db.Model(&catalog.CardTypeModel{}).Where("card_id = ?", "base1-46").Count(&typeCount).Error)
		assert.EqualValues(t, 2, attackCount)
		assert.EqualValues(t, 4, costCount, "1 Scratch cost + 3 Ember costs")
		assert.EqualValues(t, 1, typeCount)
	})

	t.Run("re-seeding updates prices in place instead of duplicating", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSeedRepository(db)

		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{fixtureCard(2.5)}))
		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{fixtureCard(9.99)}))

		var prices []catalog.PriceModel
		require.NoError(t, db.Where("card_id = ?", "base1-46").Find(&prices).Error)
		require.Len(t, prices, 1, "upsert on (card_id, source, variant) must not add rows")
		require.NotNil(t, prices[0].High)
		assert.Equal(t, 9.99, *prices[0].High)
	})

	t.Run("re-seeding does not duplicate tag relations", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSeedRepository(db)

		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{fixtureCard(2.5)}))
		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{fixtureCard(2.5)}))

		var typeCount, subtypeCount, weaknessCount, pokedexCount int64
		require.NoError(t, db.Model(&catalog.CardTypeModel{}).Count(&typeCount).Error)
		require.NoError(t, db.Model(&catalog.CardSubtypeModel{}).Count(&subtypeCount).Error)
		require.NoError(t, db.Model(&catalog.CardWeaknessModel{}).Count(&weaknessCount).Error)
		require.NoError(t, db.Model(&catalog.CardPokedexNumberModel{}).Count(&pokedexCount).Error)
		assert.EqualValues(t, 1, typeCount)
		assert.EqualValues(t, 1, subtypeCount)
		assert.EqualValues(t, 1, weaknessCount)
		assert.EqualValues(t, 1, pokedexCount)
	})

	t.Run("attack cost order survives re-seeding", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSeedRepository(db)
		cardRepo := catalog.NewCardRepository(db)

		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{fixtureCard(2.5)}))
		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{fixtureCard(2.5)}))

		detail, err := cardRepo.FindByID(context.Background(), "base1-46")
		require.NoError(t, err)
		require.Len(t, detail.Attacks, 2, "attacks are replaced, not accumulated")
		assert.Equal(t, "Scratch", detail.Attacks[0].Name)
		assert.Equal(t, []string{"Fire", "Colorless", "Colorless"}, detail.Attacks[1].Cost)
	})

	t.Run("card updates overwrite mutable fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSeedRepository(db)

		first := fixtureCard(2.5)
		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{first}))

		second := fixtureCard(2.5)
		second.Rarity = strp("Common Promo")
		require.NoError(t, repo.UpsertCards(context.Background(), []entity.SeedCard{second}))

		var cardCount int64
		require.NoError(t, db.Model(&catalog.CardModel{}).Count(&cardCount).Error)
		assert.EqualValues(t, 1, cardCount)

		var card catalog.CardModel
		require.NoError(t, db.First(&card, "id = ?", "base1-46").Error)
		require.NotNil(t, card.Rarity)
		assert.Equal(t, "Common Promo", *card.Rarity)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSeedRepository(db)

		assert.NoError(t, repo.UpsertCards(context.Background(), nil))
	})
}
