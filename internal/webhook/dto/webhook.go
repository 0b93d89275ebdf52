package dto

import (
	"smartlux-backend/internal/webhook/domain"
	"smartlux-backend/internal/webhook/usecase"
)

type AddWebhookRequest struct {
	Event string `json:"event" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

// UpdateWebhookRequest carries a partial update; empty fields are left
// unchanged.
type UpdateWebhookRequest struct {
	URL   string `json:"url"`
	Event string `json:"event"`
}

type AddWebhookResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type UpdateWebhookResponse struct {
	OK      bool                         `json:"ok"`
	Updated *usecase.UpdatedSubscription `json:"updated"`
}

type ListWebhooksResponse struct {
	OK          bool                  `json:"ok"`
	Motion      []domain.Subscription `json:"motion"`
	Temperature []domain.Subscription `json:"temperature"`
}
