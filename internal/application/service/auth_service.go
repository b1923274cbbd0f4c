package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
	"github.com/rgsalon/salonpos-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	Profile      *entity.Profile
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	profile, err := s.profileRepo.GetByAuthUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	role := "staff"
	if profile != nil {
		role = profile.Role
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

// Register creates a new account together with its staff profile. Orders
// attribute to the profile, so one is always created alongside the account.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    input.Email,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.NewStoreError("creating user", err)
	}

	role := input.Role
	if role == "" {
		role = "staff"
	}
	profile := &entity.Profile{
		AuthUserID: user.ID,
		FullName:   input.FullName,
		Role:       role,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperror.NewStoreError("creating profile", err)
	}

	user.Profile = profile
	return user, nil
}

// RefreshToken issues a new access token from a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}

	profile, err := s.profileRepo.GetByAuthUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	role := "staff"
	if profile != nil {
		role = profile.Role
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetProfile resolves the staff profile for an authenticated account
func (s *AuthService) GetProfile(ctx context.Context, authUserID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByAuthUserID(ctx, authUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewProfileNotFoundError()
	}
	return profile, nil
}
