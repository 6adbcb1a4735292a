package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fitstack/internal/auth"
	"fitstack/internal/service"
)

// BMIHandler handles BMI record endpoints. Records are always scoped to the
// authenticated user.
type BMIHandler struct {
	svc service.BMIService
}

// NewBMIHandler creates a new BMI handler.
func NewBMIHandler(svc service.BMIService) *BMIHandler {
	return &BMIHandler{svc: svc}
}

// CreateBMIRecordRequest represents a new measurement.
type CreateBMIRecordRequest struct {
	Height float64 `json:"height" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

// CreateRecord godoc
// @Summary Record a BMI measurement for the authenticated user
// @Tags bmi
// @Accept json
// @Produce json
// @Param request body CreateBMIRecordRequest true "Measurement"
// @Success 201 {object} model.BMIRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /bmi [post]
func (h *BMIHandler) CreateRecord(c echo.Context) error {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "please authenticate")
	}

	var req CreateBMIRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.svc.CreateRecord(c.Request().Context(), claims.UserID, req.Height, req.Weight)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// ListRecords godoc
// @Summary List the authenticated user's BMI measurements
// @Tags bmi
// @Produce json
// @Success 200 {array} model.BMIRecord
// @Failure 401 {object} errors.ErrorResponse
// @Router /bmi [get]
func (h *BMIHandler) ListRecords(c echo.Context) error {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "please authenticate")
	}

	records, err := h.svc.ListRecords(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, records)
}
