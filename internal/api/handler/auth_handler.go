package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/review-system/internal/api/metrics"
	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/ports"
)

// AuthHandler exposes registration, login, and the authenticated profile.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type profileResponse struct {
	User *domain.Account `json:"user"`
}

// Register creates a new account with the role named in the route.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        role  path      string              true  "Account role (user or admin)"
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/register/{role} [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role := c.Param("role")
	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, role); err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(role).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: role + " registered"})
}

// Login authenticates credentials against the account registered under the
// route's role and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        role  path      string              true  "Account role (user or admin)"
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/login/{role} [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role := c.Param("role")
	tkn, account, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(role, loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(role, "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   tkn,
		Role:    account.Role,
	})
}

// Me returns the account behind the presented token, without the hash.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.authService.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: account})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
