package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	authdomain "smartlux-backend/internal/auth/domain"
)

const usersCollection = "users"

// UserRepository persists user profile documents.
type UserRepository interface {
	Set(ctx context.Context, uid string, profile *authdomain.UserProfile) error
	Update(ctx context.Context, uid string, profile *authdomain.UserProfile) error
	Delete(ctx context.Context, uid string) error
}

// userRepository implements UserRepository over the Firestore "users"
// collection.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(client *firestore.Client) UserRepository {
	return &userRepository{
		client: client,
	}
}

func (r *userRepository) Set(ctx context.Context, uid string, profile *authdomain.UserProfile) error {
	profile.CreatedAt = time.Now()
	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, profile)
	return err
}

func (r *userRepository) Update(ctx context.Context, uid string, profile *authdomain.UserProfile) error {
	now := time.Now()
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "username", Value: profile.Username},
		{Path: "firstName", Value: profile.FirstName},
		{Path: "lastName", Value: profile.LastName},
		{Path: "email", Value: profile.Email},
		{Path: "role", Value: profile.Role},
		{Path: "updatedAt", Value: now},
	})
	return err
}

func (r *userRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Delete(ctx)
	return err
}
