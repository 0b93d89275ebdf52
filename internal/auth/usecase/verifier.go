package usecase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"smartlux-backend/internal/auth/domain"
)

// TokenVerifier resolves a bearer token to the caller's identity.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*domain.Identity, error)
}

// firebaseVerifier verifies Firebase ID tokens with the Admin SDK.
type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier creates a TokenVerifier backed by Firebase Auth.
func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{
		client: client,
	}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*domain.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	email, _ := token.Claims["email"].(string)

	// Admins carry either an admin:true custom claim or role:"admin" on
	// their Firestore-mirrored profile claims.
	isAdmin := false
	if admin, ok := token.Claims["admin"].(bool); ok && admin {
		isAdmin = true
	}
	if role, ok := token.Claims["role"].(string); ok && role == "admin" {
		isAdmin = true
	}

	return &domain.Identity{
		UID:     token.UID,
		Email:   email,
		IsAdmin: isAdmin,
	}, nil
}
