package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "smartlux-backend/internal/auth/delivery"
	"smartlux-backend/internal/webhook/domain"
	"smartlux-backend/internal/webhook/dto"
	"smartlux-backend/internal/webhook/usecase"
)

// WebhookHandler handles subscription lifecycle HTTP requests.
type WebhookHandler struct {
	webhookUsecase usecase.WebhookUsecase
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookUsecase usecase.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{
		webhookUsecase: webhookUsecase,
	}
}

// Add registers a webhook for a device.
// POST /api/webhooks/:deviceId
func (h *WebhookHandler) Add(c *gin.Context) {
	deviceID := c.Param("deviceId")
	identity := authdelivery.IdentityFromContext(c)

	var req dto.AddWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "event and url are required"})
		return
	}

	sub, err := h.webhookUsecase.Add(c.Request.Context(), deviceID, req.Event, req.URL, identity.UID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AddWebhookResponse{OK: true, ID: sub.ID})
}

// Update edits the url and/or event of an existing subscription.
// PATCH /api/webhooks/:deviceId/:subId
func (h *WebhookHandler) Update(c *gin.Context) {
	deviceID := c.Param("deviceId")
	subID := c.Param("subId")
	identity := authdelivery.IdentityFromContext(c)

	var req dto.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}
	if req.URL == "" && req.Event == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "nothing to update"})
		return
	}

	updated, err := h.webhookUsecase.Edit(c.Request.Context(), deviceID, subID, req.URL, req.Event, identity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateWebhookResponse{OK: true, Updated: updated})
}

// Delete removes a subscription. Deleting something already gone is a 404,
// not a server fault.
// DELETE /api/webhooks/:deviceId/:subId
func (h *WebhookHandler) Delete(c *gin.Context) {
	deviceID := c.Param("deviceId")
	subID := c.Param("subId")
	identity := authdelivery.IdentityFromContext(c)

	deleted, err := h.webhookUsecase.Delete(c.Request.Context(), deviceID, subID, identity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "subscription not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// List returns the device's subscriptions, filtered to the caller's own
// unless the caller is an admin.
// GET /api/webhooks/:deviceId
func (h *WebhookHandler) List(c *gin.Context) {
	deviceID := c.Param("deviceId")
	identity := authdelivery.IdentityFromContext(c)

	reg, err := h.webhookUsecase.List(c.Request.Context(), deviceID, identity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListWebhooksResponse{
		OK:          true,
		Motion:      reg.Motion,
		Temperature: reg.Temperature,
	})
}

func (h *WebhookHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidEvent), errors.Is(err, domain.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
