package relay

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartlux-backend/internal/webhook/domain"
)

const maxEventBody = 256 * 1024

// eventEnvelope pulls the event-type field out of an otherwise freeform
// device payload. Devices send either "event" or "event_type".
type eventEnvelope struct {
	Event     string `json:"event"`
	EventType string `json:"event_type"`
}

// Handler ingests device events and hands them to the relay service.
type Handler struct {
	service *Service
	secret  string
}

// NewHandler creates a relay handler. An empty secret disables the
// shared-secret check.
func NewHandler(service *Service, secret string) *Handler {
	return &Handler{
		service: service,
		secret:  secret,
	}
}

// Forward accepts a device event and acknowledges it immediately; fan-out
// happens in the background so device-facing latency never depends on
// subscriber count or slowness.
// POST /api/notify/forward/:deviceId?token=
func (h *Handler) Forward(c *gin.Context) {
	deviceID := c.Param("deviceId")

	// The secret gate runs before the ack.
	if h.secret != "" && c.Query("token") != h.secret {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxEventBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "failed to read body"})
		return
	}

	var envelope eventEnvelope
	_ = json.Unmarshal(payload, &envelope)
	name := envelope.Event
	if name == "" {
		name = envelope.EventType
	}
	event := domain.ResolveEventType(name)

	c.JSON(http.StatusAccepted, gin.H{"ok": true})

	go h.service.Forward(deviceID, event, payload)
}
