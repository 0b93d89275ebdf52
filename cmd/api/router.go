package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "smartlux-backend/internal/auth/delivery"
	authusecase "smartlux-backend/internal/auth/usecase"
	"smartlux-backend/internal/relay"
	webhookdelivery "smartlux-backend/internal/webhook/delivery"
	webhookusecase "smartlux-backend/internal/webhook/usecase"
)

func SetupRoutes(r *gin.Engine, verifier authusecase.TokenVerifier, userAdmin authusecase.UserAdminUsecase, webhookUsecase webhookusecase.WebhookUsecase, relayHandler *relay.Handler) {
	webhookHandler := webhookdelivery.NewWebhookHandler(webhookUsecase)

	// Basic root route for confirmation
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend server is running.")
	})

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Admin user management routes - only available with Firebase configured
		if userAdmin != nil {
			authHandler := authdelivery.NewAuthHandler(userAdmin)
			api.POST("/createUser", authHandler.CreateUser)
			api.POST("/updateUser", authHandler.UpdateUser)
			api.POST("/updateUserPassword", authHandler.UpdateUserPassword)
			api.POST("/deleteUser", authHandler.DeleteUser)
			api.POST("/checkUserByEmail", authHandler.CheckUserByEmail)
			api.POST("/sendResetLink", authHandler.SendResetLink)
		}

		// Webhook subscription routes (protected)
		webhooks := api.Group("/webhooks")
		webhooks.Use(authdelivery.AuthMiddleware(verifier))
		{
			webhooks.POST("/:deviceId", webhookHandler.Add)
			webhooks.PATCH("/:deviceId/:subId", webhookHandler.Update)
			webhooks.DELETE("/:deviceId/:subId", webhookHandler.Delete)
			webhooks.GET("/:deviceId", webhookHandler.List)
		}

		// Device event ingestion (shared-secret query token, no bearer auth)
		api.POST("/notify/forward/:deviceId", relayHandler.Forward)
	}
}
