package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexus-inventory/inventory-system/internal/api/metrics"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns the session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

// Register creates a new USER-role account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}

	metrics.RecordsWrittenTotal.WithLabelValues("users").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// RequestPasswordReset issues a 6-digit reset code for the account matching
// the email. The code is returned in the response body for the client to
// display; there is no out-of-band delivery channel.
//
// @Summary      Request a password reset code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequestRequest  true  "Account email"
// @Success      200   {object}  resetRequestResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/password-reset/request [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req resetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	metrics.ResetCodesIssuedTotal.Inc()
	return c.JSON(http.StatusOK, resetRequestResponse{Code: result.Code, ExpiresIn: result.ExpiresIn})
}

// ConfirmPasswordReset overwrites the account password when the code checks
// out and the new password passes the complexity rule.
//
// @Summary      Confirm a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetConfirmRequest  true  "Email, code and new password"
// @Success      204   "password updated"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req resetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.ConfirmPasswordReset(c.Request().Context(), ports.ConfirmResetInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RecoverAdminCredentials answers the security question and, on a match,
// reveals the bootstrap admin's credentials for a short display window.
//
// @Summary      Recover the bootstrap admin credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      recoverAdminRequest  true  "Security question answer"
// @Success      200   {object}  recoverAdminResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/recover-admin [post]
func (h *AuthHandler) RecoverAdminCredentials(c echo.Context) error {
	var req recoverAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	creds, err := h.authService.RecoverAdminCredentials(c.Request().Context(), req.Answer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recoverAdminResponse{
		Username:  creds.Username,
		Password:  creds.Password,
		RevealFor: creds.RevealFor,
	})
}
