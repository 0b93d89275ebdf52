package main

import (
	"context"
	"log"

	api "smartlux-backend/cmd/api"
	authRepo "smartlux-backend/internal/auth/repository"
	authUsecase "smartlux-backend/internal/auth/usecase"
	"smartlux-backend/internal/relay"
	webhookRepo "smartlux-backend/internal/webhook/repository"
	webhookUsecase "smartlux-backend/internal/webhook/usecase"
	"smartlux-backend/pkg/config"
	"smartlux-backend/pkg/firebase"
)

func main() {
	// Load configuration
	cfg := config.Load()

	var (
		verifier     authUsecase.TokenVerifier
		userAdmin    authUsecase.UserAdminUsecase
		registryRepo webhookRepo.RegistryRepository
	)

	// Initialize Firebase. Without credentials the server still runs with
	// an in-memory registry so the relay path can be exercised locally.
	if cfg.FirebaseCredentials != "" {
		app, err := firebase.NewApp(context.Background(), cfg.FirebaseCredentials, cfg.FirestoreProjectID)
		if err != nil {
			log.Fatal("Failed to initialize Firebase:", err)
		}
		defer app.Close()

		verifier = authUsecase.NewFirebaseVerifier(app.Auth())
		userAdmin = authUsecase.NewUserAdminUsecase(app.Auth(), authRepo.NewUserRepository(app.Firestore()))
		registryRepo = webhookRepo.NewFirestoreRegistryRepository(app.Firestore())
	} else {
		log.Printf("[WARN] FIREBASE_CREDENTIALS not set, using in-memory registry store; authenticated routes disabled")
		registryRepo = webhookRepo.NewMemoryRegistryRepository()
	}

	// Initialize use cases (dependency injection)
	webhookUsecaseInstance := webhookUsecase.NewWebhookUsecase(registryRepo)
	relayService := relay.NewService(webhookUsecaseInstance, cfg.RelayTimeout)

	// Initialize HTTP handler
	handler := api.NewHandler(verifier, userAdmin, webhookUsecaseInstance, relayService, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
