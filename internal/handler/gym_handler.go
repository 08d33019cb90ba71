package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GymHandler serves the static gym information endpoints.
type GymHandler struct{}

// NewGymHandler creates a new gym handler.
func NewGymHandler() *GymHandler {
	return &GymHandler{}
}

var gymServices = []string{
	"Cardio Area Access",
	"Strength Training Zone",
	"Group Fitness Classes (Premium)",
	"Personal Training Sessions (Bookable)",
	"Locker Room Access",
}

// Services godoc
// @Summary List available gym services
// @Tags gym
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /services [get]
func (h *GymHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, gymServices)
}

// TrainerData godoc
// @Summary Access trainer-only data
// @Tags gym
// @Produce json
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /trainer-data [get]
func (h *GymHandler) TrainerData(c echo.Context) error {
	return c.JSON(http.StatusOK, "Access to trainer-specific schedules and client notes.")
}
