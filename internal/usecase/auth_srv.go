package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error

	// Me backs session rehydration: a valid token returns the current user
	// without a fresh login.
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)

	// OAuthURL builds the third-party authorization URL for the redirect flow.
	OAuthURL() (*response.OAuthURLResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// Auto login after register
	authResp, err := s.issueSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return authResp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	authResp, err := s.issueSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return authResp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseAccessToken(s.config.JWT.Secret, token)
	if err != nil {
		s.log.Warn("Invalid token on logout", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, claims.SessionToken.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out", zap.String("user_id", claims.UserID.String()))
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load current user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load user")
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) OAuthURL() (*response.OAuthURLResponse, error) {
	if s.config.OAuth.ClientID == "" {
		return nil, fmt.Errorf("oauth login is not configured")
	}

	params := url.Values{}
	params.Set("client_id", s.config.OAuth.ClientID)
	params.Set("redirect_uri", s.config.OAuth.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", s.config.OAuth.Scopes)

	return &response.OAuthURLResponse{
		AuthorizationURL: s.config.OAuth.AuthURL + "?" + params.Encode(),
	}, nil
}

// ==================== HELPER METHODS ====================

// issueSession creates the DB session row and signs an access token bound
// to it, so logout can revoke the token.
func (s *authService) issueSession(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	signed, expiresAt, err := utils.GenerateAccessToken(
		s.config.JWT.Secret, user.ID, string(user.Role), session.Token, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, err
	}

	return &response.AuthResponse{
		UserID:    user.ID.String(),
		Token:     signed,
		ExpiresAt: expiresAt,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}
