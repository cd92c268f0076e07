package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"barbershop-api/internal/repository"
)

func newAuthFixture() (AuthService, *mockUserRepository, *mockRefreshTokenRepository) {
	users := newMockUserRepository()
	tokens := newMockRefreshTokenRepository()
	repo := &repository.Repository{Users: users, RefreshTokens: tokens}
	return NewAuthService(repo, "test-secret"), users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, "admin@barbershop.tn", "s3cretpass", "Mongi")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != "user" {
		t.Errorf("new account role = %s, want user", user.Role)
	}
	if user.PasswordHash == "s3cretpass" {
		t.Error("password stored in plain text")
	}

	accessToken, refreshToken, loggedIn, err := svc.Login(ctx, "admin@barbershop.tn", "s3cretpass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("login returned empty tokens")
	}
	if loggedIn.ID != user.ID {
		t.Error("login returned a different user")
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user ID = %s, want %s", claims.UserID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "admin@barbershop.tn", "s3cretpass", "Mongi"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "admin@barbershop.tn", "otherpass1", "Imposter"); !errors.Is(err, repository.ErrUserAlreadyExists) {
		t.Errorf("duplicate email: got %v, want ErrUserAlreadyExists", err)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "admin@barbershop.tn", "s3cretpass", "Mongi"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, _, _, err := svc.Login(ctx, "admin@barbershop.tn", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, _, err := svc.Login(ctx, "nobody@barbershop.tn", "s3cretpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshTokenFlow(t *testing.T) {
	svc, _, tokens := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "admin@barbershop.tn", "s3cretpass", "Mongi"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, refreshToken, _, err := svc.Login(ctx, "admin@barbershop.tn", "s3cretpass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	newAccess, err := svc.RefreshToken(ctx, refreshToken)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if _, err := svc.ValidateToken(newAccess); err != nil {
		t.Errorf("refreshed access token invalid: %v", err)
	}

	// Logout revokes the refresh token
	if err := svc.Logout(ctx, refreshToken); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.RefreshToken(ctx, refreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("revoked token refresh: got %v, want ErrInvalidToken", err)
	}

	// Logging out twice is a no-op
	if err := svc.Logout(ctx, refreshToken); err != nil {
		t.Errorf("second Logout: got %v, want nil", err)
	}

	// Expired tokens are rejected
	stored := tokens.tokens[refreshToken]
	stored.Revoked = false
	stored.ExpiresAt = time.Now().Add(-time.Hour)
	if _, err := svc.RefreshToken(ctx, refreshToken); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expired token refresh: got %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Error("garbage token validated")
	}
}
