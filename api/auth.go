package api

import "context"

// LoginInput carries username/password credentials.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PhoneLoginInput carries phone/password credentials.
type PhoneLoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterInput creates a new rider account.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// TokenPair is the backend's token response.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// AuthService covers /auth endpoints.
type AuthService struct {
	c *Client
}

// Login exchanges username/password credentials for a token pair.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (TokenPair, error) {
	var out TokenPair
	err := s.c.post(ctx, "/auth/login", in, &out)
	return out, err
}

// LoginByPhone exchanges phone/password credentials for a token pair.
func (s *AuthService) LoginByPhone(ctx context.Context, in PhoneLoginInput) (TokenPair, error) {
	var out TokenPair
	err := s.c.post(ctx, "/auth/login/phone", in, &out)
	return out, err
}

// Register creates a rider account. The backend grants ROLE_USER.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	return s.c.post(ctx, "/auth/register", in, nil)
}

// RefreshToken rotates the access token using the refresh token the
// backend associated with the session.
func (s *AuthService) RefreshToken(ctx context.Context) (TokenPair, error) {
	var out TokenPair
	err := s.c.post(ctx, "/auth/refresh-token", nil, &out)
	return out, err
}

// Logout invalidates the session server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/auth/logout", nil, nil)
}
