package usecase

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/v4/auth"

	authdomain "smartlux-backend/internal/auth/domain"
	authdto "smartlux-backend/internal/auth/dto"
	"smartlux-backend/internal/auth/repository"
)

// UserAdminUsecase covers the admin console's user management: every
// operation touches Firebase Auth and mirrors the result into the Firestore
// "users" collection.
type UserAdminUsecase interface {
	CreateUser(ctx context.Context, req *authdto.CreateUserRequest) (string, error)
	UpdateUser(ctx context.Context, req *authdto.UpdateUserRequest) error
	UpdatePassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
	CheckUserByEmail(ctx context.Context, email string) (*authdto.CheckUserResponse, error)
	ResetLink(ctx context.Context, email string) (*authdto.ResetLinkResponse, error)
}

// userAdminUsecase implements UserAdminUsecase.
type userAdminUsecase struct {
	authClient *auth.Client
	userRepo   repository.UserRepository
}

// NewUserAdminUsecase creates a new instance of userAdminUsecase.
func NewUserAdminUsecase(authClient *auth.Client, userRepo repository.UserRepository) UserAdminUsecase {
	return &userAdminUsecase{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

func (u *userAdminUsecase) CreateUser(ctx context.Context, req *authdto.CreateUserRequest) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.Username)

	record, err := u.authClient.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create auth user: %w", err)
	}

	profile := &authdomain.UserProfile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	}
	if err := u.userRepo.Set(ctx, record.UID, profile); err != nil {
		return "", fmt.Errorf("auth user created but failed to write profile: %w", err)
	}
	return record.UID, nil
}

func (u *userAdminUsecase) UpdateUser(ctx context.Context, req *authdto.UpdateUserRequest) error {
	// Auth first, then the profile doc, matching what the admin console
	// expects to have happened when it sees a failure.
	params := (&auth.UserToUpdate{}).
		Email(req.Email).
		DisplayName(req.Username)
	if _, err := u.authClient.UpdateUser(ctx, req.UID, params); err != nil {
		return fmt.Errorf("failed to update auth user: %w", err)
	}

	profile := &authdomain.UserProfile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	}
	if err := u.userRepo.Update(ctx, req.UID, profile); err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return nil
}

func (u *userAdminUsecase) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).Password(newPassword)
	if _, err := u.authClient.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (u *userAdminUsecase) DeleteUser(ctx context.Context, uid string) error {
	// A missing auth user is fine, the profile doc may still need cleanup.
	if err := u.authClient.DeleteUser(ctx, uid); err != nil {
		if !auth.IsUserNotFound(err) {
			return fmt.Errorf("failed to delete auth user: %w", err)
		}
		log.Printf("[Auth] Auth user %s already absent, removing profile only", uid)
	}

	if err := u.userRepo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete user profile: %w", err)
	}
	return nil
}

func (u *userAdminUsecase) CheckUserByEmail(ctx context.Context, email string) (*authdto.CheckUserResponse, error) {
	record, err := u.authClient.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return &authdto.CheckUserResponse{OK: false, Code: "user-not-found"}, nil
		}
		return nil, err
	}

	return &authdto.CheckUserResponse{
		OK:        true,
		UID:       record.UID,
		Email:     record.Email,
		Providers: providerIDs(record),
	}, nil
}

func (u *userAdminUsecase) ResetLink(ctx context.Context, email string) (*authdto.ResetLinkResponse, error) {
	record, err := u.authClient.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return &authdto.ResetLinkResponse{OK: false, Code: "user-not-found"}, nil
		}
		return nil, err
	}

	providers := providerIDs(record)
	if !contains(providers, "password") {
		return &authdto.ResetLinkResponse{OK: false, Code: "no-password-provider", Providers: providers}, nil
	}

	link, err := u.authClient.PasswordResetLink(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset link: %w", err)
	}

	return &authdto.ResetLinkResponse{OK: true, UID: record.UID, Link: link}, nil
}

func providerIDs(record *auth.UserRecord) []string {
	ids := make([]string, 0, len(record.ProviderUserInfo))
	for _, p := range record.ProviderUserInfo {
		ids = append(ids, p.ProviderID)
	}
	return ids
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
