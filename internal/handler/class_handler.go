package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fitbook/internal/model"
	"fitbook/internal/service"
)

// ClassHandler handles class management endpoints.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// CreateClassRequest represents a class creation request.
// The trainer reference is not checked against the trainer role here.
type CreateClassRequest struct {
	Name            string `json:"name" validate:"required"`
	TrainerID       uint   `json:"trainer_id" validate:"required"`
	Capacity        int    `json:"capacity" validate:"required,gt=0"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

// Create godoc
// @Summary Create a new class
// @Description Trainers and admins only.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClassRequest true "Class data"
// @Success 201 {object} model.Class
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes [post]
func (h *ClassHandler) Create(c echo.Context) error {
	var req CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	class, err := h.classService.CreateClass(c.Request().Context(), &model.Class{
		Name:            req.Name,
		TrainerID:       req.TrainerID,
		Capacity:        req.Capacity,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, class)
}

// List godoc
// @Summary List classes
// @Tags classes
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Class
// @Router /classes [get]
func (h *ClassHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	classes, err := h.classService.ListClasses(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, classes)
}
