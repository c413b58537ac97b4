package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Config holds token and cookie settings for the auth service
type Config struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CookieSecure    bool
}

// Validate checks that the config is usable
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}
	return nil
}

// Claims represents the access token claims
type Claims struct {
	UserID   uuid.UUID       `json:"userId"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair bundles a freshly issued access and refresh token
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshToken     string    `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username string           `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string           `json:"email" validate:"required,email,max=255"`
	FullName string           `json:"fullName" validate:"required,max=200"`
	Password string           `json:"password" validate:"required,min=8,max=72"`
	Role     *models.UserRole `json:"role"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service provides registration, credential verification and token lifecycle
type Service struct {
	config    *Config
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewService creates a new auth service
func NewService(config *Config, userRepo repository.UserRepositoryInterface, validator *validator.Validate) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &Service{config: config, userRepo: userRepo, validator: validator}, nil
}

// Register creates an account and signs the new user in
func (s *Service) Register(req *RegisterRequest) (*models.User, *TokenPair, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, apperrors.NewValidationError("", "username, email, full name and password are required")
	}
	role := models.UserRoleUser
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, nil, apperrors.NewValidationError("role", "must be one of USER, TECHNICIAN, MANAGER")
		}
		role = *req.Role
	}

	if err := s.checkAvailable(req.Email, req.Username); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login verifies credentials and issues a fresh token pair
func (s *Service) Login(req *LoginRequest) (*models.User, *TokenPair, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, apperrors.NewValidationError("", "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates the token pair. The presented refresh token must be a
// valid JWT and its hash must match the one stored for the user; anything
// else invalidates the session.
func (s *Service) Refresh(rawRefreshToken string) (*models.User, *TokenPair, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawRefreshToken, claims, s.keyFunc)
	if err != nil || !token.Valid {
		return nil, nil, apperrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidRefreshToken
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenHash != hashToken(rawRefreshToken) {
		return nil, nil, apperrors.ErrInvalidRefreshToken
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout drops the stored refresh token hash so the session cannot be renewed
func (s *Service) Logout(userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	user.RefreshTokenHash = ""
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// VerifyAccessToken parses and validates an access token
func (s *Service) VerifyAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidAccessToken
	}
	return claims, nil
}

// AccessTokenTTL exposes the access token lifetime for cookie expiry
func (s *Service) AccessTokenTTL() time.Duration { return s.config.AccessTokenTTL }

// RefreshTokenTTL exposes the refresh token lifetime for cookie expiry
func (s *Service) RefreshTokenTTL() time.Duration { return s.config.RefreshTokenTTL }

// CookieSecure reports whether auth cookies must be HTTPS-only
func (s *Service) CookieSecure() bool { return s.config.CookieSecure }

func (s *Service) issueTokens(user *models.User) (*TokenPair, error) {
	now := time.Now().UTC()
	accessExp := now.Add(s.config.AccessTokenTTL)
	refreshExp := now.Add(s.config.RefreshTokenTTL)

	accessClaims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(accessExp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshClaims := &jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(refreshExp),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	// Only the hash is persisted so a leaked row cannot renew a session
	user.RefreshTokenHash = hashToken(refreshToken)
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *Service) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.config.JWTSecret), nil
}

func (s *Service) checkAvailable(email, username string) error {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return apperrors.ErrUserExists
	}

	existing, err = s.userRepo.GetByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return apperrors.ErrUserExists
	}
	return nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
