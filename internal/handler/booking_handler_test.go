package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitbook/internal/auth"
	"fitbook/internal/errors"
	"fitbook/internal/middleware"
	"fitbook/internal/model"
)

// MockBookingService is a mock implementation of service.BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) BookClass(ctx context.Context, classID, memberID uint) (*model.Booking, error) {
	args := m.Called(ctx, classID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) ListMemberBookings(ctx context.Context, memberID uint) ([]model.Booking, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newBookingContext(t *testing.T, body string, identity *auth.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, identity)
	return c, rec
}

func TestBookingHandler_Create_Self(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("BookClass", mock.Anything, uint(5), uint(7)).
		Return(&model.Booking{ID: 1, ClassID: 5, MemberID: 7}, nil)
	h := NewBookingHandler(svc)

	identity := &auth.Identity{ID: 7, Email: "alice@example.com", Role: model.RoleMember}
	c, rec := newBookingContext(t, `{"class_id":5,"member_id":7}`, identity)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

// Booking for someone else is rejected, never silently rebound.
func TestBookingHandler_Create_RejectsBookingForAnotherUser(t *testing.T) {
	svc := new(MockBookingService)
	h := NewBookingHandler(svc)

	identity := &auth.Identity{ID: 7, Email: "alice@example.com", Role: model.RoleMember}
	c, _ := newBookingContext(t, `{"class_id":5,"member_id":8}`, identity)

	err := h.Create(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	svc.AssertNotCalled(t, "BookClass", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_Create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"capacity full", errors.ErrClassFull, http.StatusConflict},
		{"class missing", errors.ErrClassNotFound, http.StatusNotFound},
		{"member missing", errors.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockBookingService)
			svc.On("BookClass", mock.Anything, uint(5), uint(7)).Return(nil, tt.serviceErr)
			h := NewBookingHandler(svc)

			identity := &auth.Identity{ID: 7, Role: model.RoleMember}
			c, _ := newBookingContext(t, `{"class_id":5,"member_id":7}`, identity)

			err := h.Create(c)
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestBookingHandler_MyBookings(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("ListMemberBookings", mock.Anything, uint(7)).
		Return([]model.Booking{{ID: 1, ClassID: 5, MemberID: 7}}, nil)
	h := NewBookingHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/me/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, &auth.Identity{ID: 7, Role: model.RoleMember})

	require.NoError(t, h.MyBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"member_id":7`)
}
