package client

import (
	"context"
	"fmt"
)

type AuthService struct {
	client *Client
}

type RegisterParams struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

// Register creates an account and stores the returned session token.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	var result AuthResult
	if err := s.client.post(ctx, "/api/auth/register", params, &result); err != nil {
		return nil, err
	}

	if err := s.client.tokens.Save(result.Token); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}
	return &result, nil
}

// Login authenticates and stores the returned session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result AuthResult
	if err := s.client.post(ctx, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}

	if err := s.client.tokens.Save(result.Token); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}
	return &result, nil
}

// Logout revokes the server-side session and drops the stored token either way.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.client.post(ctx, "/api/auth/logout", nil, nil)
	if clearErr := s.client.tokens.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// Me returns the authenticated user for the stored token.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Rehydrate restores a session from a previously persisted token. A valid
// token returns the user without a fresh login; a rejected or missing token
// clears the store and returns (nil, nil), the logged-out state.
func (s *AuthService) Rehydrate(ctx context.Context) (*User, error) {
	token, err := s.client.tokens.Load()
	if err != nil || token == "" {
		return nil, nil
	}

	user, err := s.Me(ctx)
	if err != nil {
		if IsUnauthorized(err) {
			s.client.tokens.Clear()
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// OAuthURL fetches the third-party authorization URL for the redirect flow.
func (s *AuthService) OAuthURL(ctx context.Context) (string, error) {
	var result struct {
		AuthorizationURL string `json:"authorization_url"`
	}
	if err := s.client.get(ctx, "/api/auth/oauth/url", &result); err != nil {
		return "", err
	}
	return result.AuthorizationURL, nil
}
