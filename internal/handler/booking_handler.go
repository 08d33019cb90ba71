package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fitbook/internal/errors"
	"fitbook/internal/middleware"
	"fitbook/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents a booking request. member_id must be
// the caller's own id; it is never silently rebound.
type CreateBookingRequest struct {
	ClassID  uint `json:"class_id" validate:"required"`
	MemberID uint `json:"member_id" validate:"required"`
}

// Create godoc
// @Summary Book a seat in a class
// @Description Self-booking only: member_id must equal the caller's id.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking data"
// @Success 201 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if req.MemberID != identity.ID {
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: "cannot book for another user",
			Code:  "FORBIDDEN",
		})
	}

	booking, err := h.bookingService.BookClass(c.Request().Context(), req.ClassID, req.MemberID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, booking)
}

// MyBookings godoc
// @Summary List the current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Booking
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/bookings [get]
func (h *BookingHandler) MyBookings(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	bookings, err := h.bookingService.ListMemberBookings(c.Request().Context(), identity.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, bookings)
}
