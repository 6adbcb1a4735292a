package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fitstack/internal/service"
)

// ConditionHandler serves the medical-condition catalog.
type ConditionHandler struct {
	svc service.ConditionService
}

// NewConditionHandler creates a new condition handler.
func NewConditionHandler(svc service.ConditionService) *ConditionHandler {
	return &ConditionHandler{svc: svc}
}

// ListConditions godoc
// @Summary List the medical-condition catalog
// @Tags conditions
// @Produce json
// @Success 200 {array} model.MedicalCondition
// @Router /medical-conditions [get]
func (h *ConditionHandler) ListConditions(c echo.Context) error {
	conditions, err := h.svc.ListConditions(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, conditions)
}
