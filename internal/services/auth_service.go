package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/repositories"
)

// AuthService issues and verifies HMAC-SHA256 signed tokens and handles
// credential checks for login.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService. Tokens are valid for 24 hours.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// CreateToken issues a signed token for the given user ID. Claims carry the
// user ID as the subject, the issue time, and a 24h expiry.
func (s *AuthService) CreateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokenDurat).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token, returning its claims. A
// malformed token, a bad signature, or an expired token all yield
// ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Login checks the email/password pair and returns a signed token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.CreateToken(user.ID)
}
