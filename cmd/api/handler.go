package api

import (
	"github.com/gin-gonic/gin"

	authusecase "smartlux-backend/internal/auth/usecase"
	"smartlux-backend/internal/relay"
	webhookusecase "smartlux-backend/internal/webhook/usecase"
	"smartlux-backend/pkg/config"
)

type Handler struct {
	verifier       authusecase.TokenVerifier
	userAdmin      authusecase.UserAdminUsecase
	webhookUsecase webhookusecase.WebhookUsecase
	relayHandler   *relay.Handler
	config         *config.Config
}

func NewHandler(verifier authusecase.TokenVerifier, userAdmin authusecase.UserAdminUsecase, webhookUsecase webhookusecase.WebhookUsecase, relayService *relay.Service, cfg *config.Config) *Handler {
	return &Handler{
		verifier:       verifier,
		userAdmin:      userAdmin,
		webhookUsecase: webhookUsecase,
		relayHandler:   relay.NewHandler(relayService, cfg.NotifySecret),
		config:         cfg,
	}
}

// Engine builds the gin engine with CORS and all routes registered.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.verifier, h.userAdmin, h.webhookUsecase, h.relayHandler)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
