package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fitstack/internal/auth"
	"fitstack/internal/model"
	"fitstack/internal/service"
)

// ApplicationHandler handles admin decisions on expert applications.
type ApplicationHandler struct {
	svc service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// ChangeStatusRequest carries the admin's decision.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// ApplicationResponse wraps the decided application.
type ApplicationResponse struct {
	Application *model.Application `json:"application"`
}

// ChangeApplicationStatus godoc
// @Summary Approve or reject an expert application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body ChangeStatusRequest true "Decision"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /applications/{id}/expert-approved [put]
func (h *ApplicationHandler) ChangeApplicationStatus(c echo.Context) error {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "please authenticate")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.svc.ChangeApplicationStatus(
		c.Request().Context(),
		uint(id),
		model.ApplicationStatus(req.Status),
		claims.UserID,
	)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, ApplicationResponse{Application: application})
}
