package services

import (
	"errors"
	"log"

	"edilians-parkinfo/internal/config"
	"edilians-parkinfo/internal/pkg/jwt"
	"edilians-parkinfo/internal/pkg/password"

	"github.com/google/uuid"
)

// Auth service errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

// consoleAccount is one entry of the static allow-list gating the
// console. Plaintext credentials from config are hashed at startup
// and dropped.
type consoleAccount struct {
	Username     string
	PasswordHash string
	Role         string
}

// AuthService authenticates console operators against the static
// allow-list. The directory's User records are data, not logins.
type AuthService struct {
	accounts []consoleAccount
	cfg      *config.Config
}

// NewAuthService creates a new auth service from the configured
// console accounts
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	accounts := make([]consoleAccount, 0, len(cfg.Console))
	for _, cred := range cfg.Console {
		hash, err := password.Hash(cred.Password)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, consoleAccount{
			Username:     cred.Username,
			PasswordHash: hash,
			Role:         cred.Role,
		})
	}

	log.Printf("✅ Console allow-list loaded (%d accounts)", len(accounts))
	return &AuthService{accounts: accounts, cfg: cfg}, nil
}

// LoginResult represents a successful login
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
	Username     string `json:"username"`
	Role         string `json:"role"`
}

// Login checks the credentials against the allow-list and mints an
// access/refresh token pair
func (s *AuthService) Login(username, pass string) (*LoginResult, error) {
	var account *consoleAccount
	for i := range s.accounts {
		if s.accounts[i].Username == username {
			account = &s.accounts[i]
			break
		}
	}
	if account == nil || !password.Verify(pass, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := jwt.GenerateAccessToken(
		account.Username, account.Role,
		s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		account.Username, uuid.NewString(),
		s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Username:     account.Username,
		Role:         account.Role,
	}, nil
}

// Refresh validates a refresh token and mints a new access token.
// The account must still be on the allow-list.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	for i := range s.accounts {
		if s.accounts[i].Username == claims.Username {
			return jwt.GenerateAccessToken(
				claims.Username, s.accounts[i].Role,
				s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins,
			)
		}
	}
	return "", ErrInvalidRefresh
}
