package auth

import (
	"errors"
	"fmt"
	"time"

	"testtrack-backend/internal/database/models"
	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is the fixed lifetime of a session token. There is no revocation
// list; expiry is the only server-side invalidation.
const TokenTTL = 7 * 24 * time.Hour

// SessionCookieName is the cookie checked when no Authorization header is
// present, so browser-navigated requests (e.g. image tags) can authenticate.
const SessionCookieName = "tt_session"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService signs and verifies session tokens and resolves them to users
type AuthService struct {
	jwtSecret string
	users     repository.UserRepositoryInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret string, users repository.UserRepositoryInterface) *AuthService {
	return &AuthService{
		jwtSecret: jwtSecret,
		users:     users,
	}
}

// GenerateToken creates a signed session token for the user
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "testtrack-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken validates and parses a session token. Verification checks the
// signature method, signature and expiry.
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ResolveUser resolves a token to its ACTIVE user. Any verification failure,
// an unknown user, or a non-ACTIVE account fails closed with an
// AuthenticationError.
func (s *AuthService) ResolveUser(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsActive() {
		return nil, apperrors.ErrUserInactive
	}

	return user, nil
}

// Signup creates a new user account with a bcrypt-hashed password
func (s *AuthService) Signup(email, password, displayName string) (*models.User, error) {
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Status:       models.UserStatusActive,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and mints a session token. Credential and
// account-status failures are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, apperrors.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrBadCredentials
	}

	if !user.IsActive() {
		return "", nil, apperrors.ErrBadCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}
