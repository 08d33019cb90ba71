package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"fitbook/internal/auth"
	"fitbook/internal/config"
	"fitbook/internal/handler"
	"fitbook/internal/metrics"
	appmw "fitbook/internal/middleware"
)

// loginRatePerSecond throttles credential guessing on the login route.
const loginRatePerSecond = 5

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authenticator *auth.Authenticator,
	recorder metrics.Recorder,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	classHandler *handler.ClassHandler,
	bookingHandler *handler.BookingHandler,
	gymHandler *handler.GymHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login,
		echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(loginRatePerSecond))))
	api.GET("/classes", classHandler.List)

	// Authenticated routes: authenticate first, then per-group role checks.
	secured := api.Group("", appmw.Authenticate(authenticator, recorder))

	secured.GET("/me", userHandler.Me)
	secured.GET("/me/bookings", bookingHandler.MyBookings)
	secured.GET("/services", gymHandler.Services)
	secured.POST("/bookings", bookingHandler.Create)

	trainer := secured.Group("", appmw.RequireRoles(auth.TrainerOrAdmin))
	trainer.GET("/trainer-data", gymHandler.TrainerData)
	trainer.POST("/classes", classHandler.Create)

	admin := secured.Group("/admin", appmw.RequireRoles(auth.AdminOnly))
	admin.PATCH("/users/:id/role", userHandler.UpdateRole)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
