package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/security"
	"github.com/PixelCraftAgency/pixelcraft-go/pkg/config"
)

// AuthService authenticates the admin surface. There is a single admin
// identity verified against a bcrypt hash from the environment.
type AuthService struct {
	logger *logging.ChanneledLogger
}

func NewAuthService(logger *logging.ChanneledLogger) *AuthService {
	if config.JWTSecret == "" {
		secret, err := security.GenerateSecureToken(32)
		if err == nil {
			config.JWTSecret = secret
			logger.Auth().Warn("JWT_SECRET not set, generated an ephemeral signing secret; admin sessions will not survive a restart")
		} else {
			logger.Auth().Error("Failed to generate ephemeral JWT secret", "error", err.Error())
		}
	}
	return &AuthService{logger: logger}
}

// Login verifies the admin password and returns a signed JWT.
func (s *AuthService) Login(password string) (string, error) {
	if config.AdminPasswordHash == "" {
		return "", fmt.Errorf("admin authentication is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)); err != nil {
		s.logger.Auth().Warn("Admin login rejected")
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := security.GenerateAdminToken("admin", config.JWTSecret, config.AdminTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}

	s.logger.Auth().Info("Admin login succeeded")
	return token, nil
}

// ValidateToken checks a bearer token and returns the embedded role.
func (s *AuthService) ValidateToken(token string) (string, error) {
	claims, err := security.ValidateJWT(token, config.JWTSecret)
	if err != nil {
		return "", err
	}
	role := security.RoleFromClaims(claims)
	if role != "admin" {
		return "", fmt.Errorf("insufficient role: %s", role)
	}
	return role, nil
}
