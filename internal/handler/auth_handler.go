package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "fitstack/internal/errors"
	"fitstack/internal/model"
	"fitstack/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// UserPayload is the profile part of a registration request.
type UserPayload struct {
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"password" validate:"required,min=8"`
	Name        string    `json:"name" validate:"required"`
	Avatar      string    `json:"avatar" validate:"required"`
	DOB         time.Time `json:"dob" validate:"required"`
	Gender      string    `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	AccountType string    `json:"accountType" validate:"omitempty,oneof=BASIC SILVER GOLD VIP DIAMOND"`
}

// BMIPayload is the initial measurement created with a new user.
type BMIPayload struct {
	Height float64 `json:"height" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

// ApplicationPayload is the evidence attached to an expert registration.
type ApplicationPayload struct {
	Image       string `json:"image" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	User                UserPayload `json:"user" validate:"required"`
	BMIRecord           BMIPayload  `json:"bmiRecord" validate:"required"`
	MedicalConditionIDs []uint      `json:"medicalConditionIds" validate:"required"`
}

// RegisterExpertRequest represents an expert applicant registration request.
type RegisterExpertRequest struct {
	User        UserPayload        `json:"user" validate:"required"`
	Application ApplicationPayload `json:"application" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token for logout and rotation.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ForgotPasswordRequest represents a password reset request.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries the new password; the reset token travels in
// the query string.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResponse represents a registration or login response.
type AuthResponse struct {
	User   *model.User        `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, tokens, err := h.authService.Register(
		c.Request().Context(),
		userInput(req.User),
		service.BMIRecordInput{Height: req.BMIRecord.Height, Weight: req.BMIRecord.Weight},
		req.MedicalConditionIDs,
	)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{User: user, Tokens: tokens})
}

// RegisterExpert godoc
// @Summary Register a new expert applicant
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterExpertRequest true "Registration data with application evidence"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register-expert [post]
func (h *AuthHandler) RegisterExpert(c echo.Context) error {
	var req RegisterExpertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, tokens, err := h.authService.RegisterExpert(
		c.Request().Context(),
		userInput(req.User),
		service.ExpertApplicationInput{Image: req.Application.Image, Description: req.Application.Description},
	)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{User: user, Tokens: tokens})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, tokens, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{User: user, Tokens: tokens})
}

// Logout godoc
// @Summary Logout by consuming a refresh token
// @Tags auth
// @Accept json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return respondError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RefreshTokens godoc
// @Summary Rotate a refresh token into a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} service.TokenPair
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/refresh-tokens [post]
func (h *AuthHandler) RefreshTokens(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tokens, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Tags auth
// @Accept json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return respondError(err)
	}

	// 204 whether or not the email is registered.
	return c.NoContent(http.StatusNoContent)
}

// ResetPassword godoc
// @Summary Reset the password using a reset token
// @Tags auth
// @Accept json
// @Param token query string true "Reset token"
// @Param request body ResetPasswordRequest true "New password"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token query parameter is required")
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), token, req.Password); err != nil {
		return respondError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func userInput(p UserPayload) service.RegisterUserInput {
	return service.RegisterUserInput{
		Email:       p.Email,
		Password:    p.Password,
		Name:        p.Name,
		Avatar:      p.Avatar,
		DOB:         p.DOB,
		Gender:      model.Gender(p.Gender),
		AccountType: model.AccountType(p.AccountType),
	}
}

// respondError maps a domain error onto the HTTP taxonomy.
func respondError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
