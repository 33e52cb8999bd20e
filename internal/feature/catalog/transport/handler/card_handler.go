// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"card_backend/internal/api"
	"card_backend/internal/feature/catalog/domain/entity"
	"card_backend/internal/feature/catalog/transport/http/dto"
	"card_backend/internal/feature/catalog/usecase"
)

// CatalogUsecase はカードカタログ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	ListCards(ctx context.Context, page, limit int, filter usecase.CardFilter) (entity.CardPage, int, int, error)
	GetCardDetail(ctx context.Context, id string) (*entity.CardDetail, error)
	ListSetNames(ctx context.Context) ([]string, error)
	ListRarities(ctx context.Context) ([]string, error)
	ListSupertypes(ctx context.Context) ([]string, error)
}

// CardHandler はカードカタログのHTTPリクエストを処理します。
type CardHandler struct {
	uc CatalogUsecase
}

// NewCardHandler は指定されたusecaseでCardHandlerの新しいインスタンスを生成します。
func NewCardHandler(uc CatalogUsecase) *CardHandler {
	return &CardHandler{uc: uc}
}

// queryInt はクエリパラメータを整数に変換します。欠落・非数値はデフォルト値になります。
// 不正なページネーション入力でエラーを返すことはなく、常に丸めて処理を続行します。
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// List はカード一覧を取得するAPIです。
//
// エンドポイント例:
// GET /cards?page=1&limit=10&search=char&rarity=Rare&set=Base&cardType=Pokémon
func (h *CardHandler) List(c *gin.Context) {
	page := queryInt(c, "page", usecase.DefaultPage)
	limit := queryInt(c, "limit", usecase.DefaultLimit)

	filter := usecase.CardFilter{
		Search:    c.Query("search"),
		Rarity:    c.Query("rarity"),
		SetName:   c.Query("set"),
		Supertype: c.Query("cardType"),
	}

	result, page, limit, err := h.uc.ListCards(c.Request.Context(), page, limit, filter)
	if err != nil {
		// ストアエラーの詳細はログにのみ残し、クライアントには汎用メッセージを返す
		slog.Error("failed to fetch cards", "error", err, "page", page, "limit", limit)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch cards"})
		return
	}

	out := make([]dto.CardItem, 0, len(result.Cards))
	for _, card := range result.Cards {
		out = append(out, dto.CardItem{
			ID:            card.ID,
			Name:          card.Name,
			SetName:       card.SetName,
			Rarity:        card.Rarity,
			ImageSmallURL: card.ImageSmallURL,
			ImageLargeURL: card.ImageLargeURL,
			Supertype:     card.Supertype,
			Number:        card.Number,
			HP:            card.HP,
			Artist:        card.Artist,
			HighestPrice:  card.HighestPrice,
		})
	}

	c.JSON(http.StatusOK, dto.CardListResponse{
		Page:  page,
		Limit: limit,
		Total: result.Total,
		Data:  out,
	})
}

// Detail はカード1件の詳細を取得するAPIです。
// 存在しないIDの場合は404を返します。
//
// エンドポイント例:
// GET /cards/base1-4
func (h *CardHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.uc.GetCardDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Card not found"})
			return
		}
		slog.Error("failed to fetch card", "error", err, "card_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch card"})
		return
	}

	c.JSON(http.StatusOK, toDetailResponse(detail))
}

// Sets はフィルタメニュー用のセット名一覧を取得するAPIです。
func (h *CardHandler) Sets(c *gin.Context) {
	sets, err := h.uc.ListSetNames(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch sets", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch sets"})
		return
	}
	c.JSON(http.StatusOK, dto.SetListResponse{Sets: sets})
}

// Rarities はフィルタメニュー用のレアリティ一覧を取得するAPIです。
func (h *CardHandler) Rarities(c *gin.Context) {
	rarities, err := h.uc.ListRarities(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch rarities", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rarities"})
		return
	}
	c.JSON(http.StatusOK, dto.RarityListResponse{Rarities: rarities})
}

// Types はフィルタメニュー用のカード区分一覧を取得するAPIです。
func (h *CardHandler) Types(c *gin.Context) {
	types, err := h.uc.ListSupertypes(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch card types", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch card types"})
		return
	}
	c.JSON(http.StatusOK, dto.TypeListResponse{Types: types})
}

// toDetailResponse はドメインの詳細ビューをレスポンスDTOに変換します。
func toDetailResponse(d *entity.CardDetail) dto.CardDetailResponse {
	attacks := make([]dto.AttackItem, 0, len(d.Attacks))
	for _, a := range d.Attacks {
		attacks = append(attacks, dto.AttackItem{
			Name:                a.Name,
			Cost:                a.Cost,
			Damage:              a.Damage,
			Text:                a.Text,
			ConvertedEnergyCost: a.ConvertedEnergyCost,
		})
	}

	abilities := make([]dto.AbilityItem, 0, len(d.Abilities))
	for _, a := range d.Abilities {
		abilities = append(abilities, dto.AbilityItem{Name: a.Name, Text: a.Text, Type: a.Type})
	}

	weaknesses := make([]dto.TypeValueItem, 0, len(d.Weaknesses))
	for _, w := range d.Weaknesses {
		weaknesses = append(weaknesses, dto.TypeValueItem{Type: w.Type, Value: w.Value})
	}

	resistances := make([]dto.TypeValueItem, 0, len(d.Resistances))
	for _, r := range d.Resistances {
		resistances = append(resistances, dto.TypeValueItem{Type: r.Type, Value: r.Value})
	}

	prices := make([]dto.PriceItem, 0, len(d.Prices))
	for _, p := range d.Prices {
		prices = append(prices, dto.PriceItem{
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

	return dto.CardDetailResponse{
		ID:                   d.ID,
		Name:                 d.Name,
		Number:               d.Number,
		Rarity:               d.Rarity,
		Supertype:            d.Supertype,
		HP:                   d.HP,
		Level:                d.Level,
		Artist:               d.Artist,
		FlavorText:           d.FlavorText,
		EvolvesFrom:          d.EvolvesFrom,
		ConvertedRetreatCost: d.ConvertedRetreatCost,
		LegalityUnlimited:    d.LegalityUnlimited,
		LegalityExpanded:     d.LegalityExpanded,
		ImageSmallURL:        d.ImageSmallURL,
		ImageLargeURL:        d.ImageLargeURL,
		SetName:              d.SetName,
		SetSeries:            d.SetSeries,
		SetReleaseDate:       d.SetReleaseDate,

		Types:                  d.Types,
		Subtypes:               d.Subtypes,
		Attacks:                attacks,
		Abilities:              abilities,
		Weaknesses:             weaknesses,
		Resistances:            resistances,
		NationalPokedexNumbers: d.NationalPokedexNumbers,
		Prices:                 prices,
	}
}
