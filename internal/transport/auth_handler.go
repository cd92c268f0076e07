package transport

import (
	"encoding/json"
	"net/http"

	"barbershop-api/internal/middleware"
	"barbershop-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the token refresh request payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserProfile `json:"user"`
}

// RefreshResponse represents the token refresh response
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// UserProfile represents back-office user profile data
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthHandler handles HTTP requests for back-office authentication
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers all auth routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		// Public routes
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)
			r.Get("/profile", h.GetProfile)
		})
	})
}

// Register handles back-office account creation
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Registration validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Error("Registration failed", zap.Error(err))

		if err.Error() == "user with this email already exists" {
			middleware.RespondWithError(w, http.StatusConflict, "user with this email already exists")
			return
		}

		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	profile := UserProfile{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}

	h.logger.Info("User registered successfully", zap.String("user_id", user.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, profile)
}

// Login handles back-office authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Login failed", zap.Error(err))

		if err == service.ErrInvalidCredentials {
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}

		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	response := LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserProfile{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}

	h.logger.Info("User logged in successfully", zap.String("user_id", user.ID.String()))
	middleware.RespondWithJSON(w, http.StatusOK, response)
}

// Logout handles back-office logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Logout decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.Logout(r.Context(), req.RefreshToken); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to logout")
		return
	}

	h.logger.Info("User logged out successfully")
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

// RefreshToken handles access token renewal
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Refresh token validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newAccessToken, err := h.authService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		h.logger.Debug("Token refresh failed", zap.Error(err))

		if err == service.ErrInvalidToken {
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid refresh token")
			return
		}
		if err == service.ErrTokenExpired {
			middleware.RespondWithError(w, http.StatusUnauthorized, "refresh token expired")
			return
		}

		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to refresh token")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, RefreshResponse{AccessToken: newAccessToken})
}

// GetProfile handles getting the authenticated user's profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userIDStr, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Error("User ID not found in context")
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		h.logger.Error("Invalid user ID format", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get user profile", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get user profile")
		return
	}

	profile := UserProfile{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}

	middleware.RespondWithJSON(w, http.StatusOK, profile)
}
