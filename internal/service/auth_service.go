package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barbershop-api/internal/domain"
	"barbershop-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing.
	BcryptCost = 10

	AccessTokenExpiration  = 15 * time.Minute
	RefreshTokenExpiration = 7 * 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
)

// Claims represents the JWT claims issued to back-office users.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// AuthService defines the interface for back-office authentication. It
// replaces the original client-side placeholder login with server-issued,
// server-verified tokens.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *domain.User, err error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken string, err error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type authService struct {
	repo      *repository.Repository
	jwtSecret string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(repo *repository.Repository, jwtSecret string) AuthService {
	return &authService{repo: repo, jwtSecret: jwtSecret}
}

// Register creates a new back-office account with a hashed password. New
// accounts get the "user" role; admins are promoted explicitly.
func (s *authService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	existing, err := s.repo.Users.FindByEmail(ctx, email)
	if err != nil && err != repository.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         "user",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns JWT tokens.
func (s *authService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *domain.User, err error) {
	user, err = s.repo.Users.FindByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return "", "", nil, ErrInvalidCredentials
		}
		return "", "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err = s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err = s.generateRefreshToken(ctx, user)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Logout invalidates the refresh token. An unknown token counts as already
// logged out.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.repo.RefreshTokens.Revoke(ctx, refreshToken); err != nil {
		if err == repository.ErrRefreshTokenNotFound {
			return nil
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RefreshToken exchanges a valid refresh token for a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshTokenString string) (string, error) {
	refreshToken, err := s.repo.RefreshTokens.FindByToken(ctx, refreshTokenString)
	if err != nil {
		if err == repository.ErrRefreshTokenNotFound || err == repository.ErrRefreshTokenRevoked {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("failed to find refresh token: %w", err)
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		return "", ErrTokenExpired
	}

	user, err := s.repo.Users.FindByID(ctx, refreshToken.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	return s.generateAccessToken(user)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUserByID retrieves a user by ID.
func (s *authService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.repo.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *authService) generateAccessToken(user *domain.User) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	tokenString := uuid.New().String()

	refreshToken := &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     tokenString,
		ExpiresAt: time.Now().Add(RefreshTokenExpiration),
		CreatedAt: time.Now(),
		Revoked:   false,
	}

	if err := s.repo.RefreshTokens.Create(ctx, refreshToken); err != nil {
		return "", err
	}

	return tokenString, nil
}
