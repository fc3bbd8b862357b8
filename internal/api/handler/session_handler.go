package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/barangayhub/admin-api/internal/api/metrics"
	"github.com/barangayhub/admin-api/internal/api/middleware"
	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
)

// SessionHandler handles login, logout, and the session check endpoint.
type SessionHandler struct {
	auth      ports.AuthService
	cookieTTL time.Duration
}

func NewSessionHandler(auth ports.AuthService, cookieTTL time.Duration) *SessionHandler {
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}
	return &SessionHandler{auth: auth, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    sessionUser `json:"user"`
}

type checkSessionResponse struct {
	Success  bool         `json:"success"`
	LoggedIn bool         `json:"logged_in"`
	User     *sessionUser `json:"user,omitempty"`
	Message  string       `json:"message,omitempty"`
}

// Login handles POST /api/login. On success the session cookie is set and
// the authenticated user returned.
//
// @Summary      Log in with email and password
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	h.setSessionCookie(c, token)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		User: sessionUser{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      string(user.Role),
		},
	})
}

// Logout handles POST|GET /api/logout. Destroying an already-dead session
// still succeeds.
//
// @Summary      Log out and destroy the session
// @Tags         session
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), middleware.SessionToken(c)); err != nil {
		return err
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// Check handles GET /api/check-session. It is deliberately unguarded: the
// 401 body tells the client to redirect to login rather than signalling an
// error condition.
//
// @Summary      Report whether the caller holds a valid session
// @Tags         session
// @Produce      json
// @Success      200  {object}  checkSessionResponse
// @Failure      401  {object}  checkSessionResponse
// @Router       /api/check-session [get]
func (h *SessionHandler) Check(c echo.Context) error {
	identity, err := h.auth.Current(c.Request().Context(), middleware.SessionToken(c))
	if err != nil {
		return err
	}
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, checkSessionResponse{
			Success:  false,
			LoggedIn: false,
			Message:  "Not authenticated",
		})
	}

	return c.JSON(http.StatusOK, checkSessionResponse{
		Success:  true,
		LoggedIn: true,
		User:     identityUser(*identity),
	})
}

func identityUser(identity domain.Identity) *sessionUser {
	return &sessionUser{
		ID:        identity.UserID,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Role:      string(identity.Role),
	}
}

func (h *SessionHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *SessionHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
