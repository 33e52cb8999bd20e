// Package handler はbinderフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"card_backend/internal/api"
	"card_backend/internal/feature/binder/domain/entity"
	"card_backend/internal/feature/binder/transport/http/dto"
	"card_backend/internal/feature/binder/usecase"
	catalogentity "card_backend/internal/feature/catalog/domain/entity"
	catalogdto "card_backend/internal/feature/catalog/transport/http/dto"
	jwtmw "card_backend/internal/platform/jwt"
)

// BinderUsecase はバインダー操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BinderUsecase interface {
	ListBinders(ctx context.Context, userID uint) ([]entity.Binder, error)
	CreateBinder(ctx context.Context, userID uint, name string) (*entity.Binder, error)
	ListBinderCards(ctx context.Context, userID, binderID uint) ([]catalogentity.CardSummary, error)
	AddCard(ctx context.Context, userID, binderID uint, cardID string) error
	RemoveCard(ctx context.Context, userID, binderID uint, cardID string) error
}

// BinderHandler はバインダーのHTTPリクエストを処理します。
// 全エンドポイントがJWT認証ミドルウェアの背後にあることを前提とします。
type BinderHandler struct {
	uc BinderUsecase
}

// NewBinderHandler は指定されたusecaseでBinderHandlerの新しいインスタンスを生成します。
func NewBinderHandler(uc BinderUsecase) *BinderHandler {
	return &BinderHandler{uc: uc}
}

// currentUserID はJWTミドルウェアがコンテキストに設定したユーザーIDを取り出します。
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// binderIDParam はパスパラメータのバインダーIDを解析します。
func binderIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// List は自分のバインダー一覧を取得するAPIです。
//
// エンドポイント例:
// GET /binders
func (h *BinderHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	binders, err := h.uc.ListBinders(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to fetch binders", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch binders"})
		return
	}

	out := make([]dto.BinderItem, 0, len(binders))
	for _, b := range binders {
		out = append(out, dto.BinderItem{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt})
	}
	c.JSON(http.StatusOK, dto.BinderListResponse{Data: out})
}

// Create は新しいバインダーを作成するAPIです。
//
// エンドポイント例:
// POST /binders {"name": "Trade stack"}
func (h *BinderHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateBinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	binder, err := h.uc.CreateBinder(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidBinderName) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}
		slog.Error("failed to create binder", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create binder"})
		return
	}

	c.JSON(http.StatusCreated, dto.BinderItem{ID: binder.ID, Name: binder.Name, CreatedAt: binder.CreatedAt})
}

// Cards はバインダー収録カードの一覧を取得するAPIです。
// 他人のバインダーと存在しないバインダーはどちらも404になります。
//
// エンドポイント例:
// GET /binders/3/cards
func (h *BinderHandler) Cards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	binderID, err := binderIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid binder id"})
		return
	}

	cards, err := h.uc.ListBinderCards(c.Request.Context(), userID, binderID)
	if err != nil {
		if errors.Is(err, usecase.ErrBinderNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Binder not found"})
			return
		}
		slog.Error("failed to fetch binder cards", "error", err, "user_id", userID, "binder_id", binderID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch binder cards"})
		return
	}

	out := make([]catalogdto.CardItem, 0, len(cards))
	for _, card := range cards {
		out = append(out, catalogdto.CardItem{
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
	c.JSON(http.StatusOK, dto.BinderCardsResponse{Data: out})
}

// AddCard はカードをバインダーに追加するAPIです。
//
// エンドポイント例:
// POST /binders/3/cards {"card_id": "base1-4"}
func (h *BinderHandler) AddCard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	binderID, err := binderIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid binder id"})
		return
	}

	var req dto.AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.uc.AddCard(c.Request.Context(), userID, binderID, req.CardID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBinderNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Binder not found"})
		case errors.Is(err, usecase.ErrCardNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Card not found"})
		case errors.Is(err, usecase.ErrCardAlreadyInBinder):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Card already in binder"})
		default:
			slog.Error("failed to add card to binder", "error", err, "user_id", userID, "binder_id", binderID, "card_id", req.CardID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to add card"})
		}
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// RemoveCard はカードをバインダーから取り除くAPIです。
//
// エンドポイント例:
// DELETE /binders/3/cards/base1-4
func (h *BinderHandler) RemoveCard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	binderID, err := binderIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid binder id"})
		return
	}
	cardID := c.Param("cardId")

	if err := h.uc.RemoveCard(c.Request.Context(), userID, binderID, cardID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBinderNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Binder not found"})
		case errors.Is(err, usecase.ErrCardNotInBinder):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Card not in binder"})
		default:
			slog.Error("failed to remove card from binder", "error", err, "user_id", userID, "binder_id", binderID, "card_id", cardID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to remove card"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
