package services_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"
)

const testJWTSecret = "test_jwt_secret"

func TestAuthService_TokenRoundTrip(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret)

	token, err := authService.CreateToken(7)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
	assert.Equal(t, claims.IssuedAt+int64((24*time.Hour).Seconds()), claims.ExpiresAt)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret)

	// Sign a token with the same secret but an expiry in the past.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "7",
		IssuedAt:  time.Now().Add(-48 * time.Hour).Unix(),
		ExpiresAt: time.Now().Add(-24 * time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(tokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret)
	otherService := services.NewAuthService(new(MockUserRepository), "another_secret")

	token, err := otherService.CreateToken(7)
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_Malformed(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret)

	claims, err := authService.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           42,
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: string(hashedPassword),
	}

	// Successful login yields a token carrying the user ID as subject.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)
	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown email is indistinguishable from a wrong password.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}
