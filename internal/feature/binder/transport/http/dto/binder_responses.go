// Package dto defines data transfer objects for the binder HTTP API.
package dto

import (
	"time"

	catalogdto "card_backend/internal/feature/catalog/transport/http/dto"
)

// CreateBinderRequest is the request body for POST /binders.
type CreateBinderRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// AddCardRequest is the request body for POST /binders/:id/cards.
type AddCardRequest struct {
	CardID string `json:"card_id" binding:"required"`
}

// BinderItem represents one binder in API responses.
type BinderItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BinderListResponse is the envelope for GET /binders.
type BinderListResponse struct {
	Data []BinderItem `json:"data"`
}

// BinderCardsResponse is the envelope for GET /binders/:id/cards.
// Cards reuse the catalog list item shape so clients render both views the same way.
type BinderCardsResponse struct {
	Data []catalogdto.CardItem `json:"data"`
}
