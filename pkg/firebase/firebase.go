package firebase

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App wraps the Firebase Admin SDK clients used by the backend:
// Auth for identity verification and user management, Firestore for storage.
type App struct {
	authClient      *auth.Client
	firestoreClient *firestore.Client
}

// NewApp initializes the Firebase app from the given service account file.
func NewApp(ctx context.Context, credentialsFile, projectID string) (*App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firestore client: %w", err)
	}

	log.Println("[Firebase] App initialized successfully")
	return &App{
		authClient:      authClient,
		firestoreClient: firestoreClient,
	}, nil
}

// Auth returns the Firebase Auth admin client.
func (a *App) Auth() *auth.Client {
	return a.authClient
}

// Firestore returns the Firestore client.
func (a *App) Firestore() *firestore.Client {
	return a.firestoreClient
}

// Close releases the Firestore connection.
func (a *App) Close() error {
	return a.firestoreClient.Close()
}
