package handlers

import (
	"net/http"
	"time"

	"gearguard-backend/internal/auth"
	"gearguard-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles registration, login and token lifecycle endpoints
type AuthHandler struct {
	service *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// AuthUserView is the account payload returned by auth endpoints
type AuthUserView struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

func authUserView(user *models.User) *AuthUserView {
	return &AuthUserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, pair, err := h.service.Register(&req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	h.setAuthCookies(c, pair)
	respond(c, http.StatusCreated, authUserView(user), "Registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, pair, err := h.service.Login(&req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	h.setAuthCookies(c, pair)
	respond(c, http.StatusOK, authUserView(user), "Logged in successfully")
}

// Refresh handles POST /auth/refresh. The refresh token is read from the
// refreshToken cookie, falling back to the request body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	raw, _ := c.Cookie(auth.RefreshTokenCookie)
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			raw = body.RefreshToken
		}
	}
	if raw == "" {
		respondError(c, http.StatusUnauthorized, "Refresh token is missing")
		return
	}

	user, pair, err := h.service.Refresh(raw)
	if err != nil {
		respondAppError(c, err)
		return
	}
	h.setAuthCookies(c, pair)
	respond(c, http.StatusOK, authUserView(user), "Tokens refreshed successfully")
}

// Logout handles POST /auth/logout. Requires authentication.
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	if err := h.service.Logout(actor.ID); err != nil {
		respondAppError(c, err)
		return
	}
	h.clearAuthCookies(c)
	respond(c, http.StatusOK, nil, "Logged out successfully")
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *auth.TokenPair) {
	secure := h.service.CookieSecure()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, pair.AccessToken,
		int(h.service.AccessTokenTTL().Seconds()), "/", "", secure, true)
	c.SetCookie(auth.RefreshTokenCookie, pair.RefreshToken,
		int(h.service.RefreshTokenTTL().Seconds()), "/", "", secure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	secure := h.service.CookieSecure()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(auth.RefreshTokenCookie, "", -1, "/", "", secure, true)
}
