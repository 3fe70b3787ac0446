package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"roastery/internal/handler"
)

// Register wires routes and middleware. guard protects session-gated routes.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
	guard echo.MiddlewareFunc,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public pages
	e.GET("/", pageHandler.Home)
	e.GET("/menu", pageHandler.Menu)
	e.GET("/shop", pageHandler.Shop)
	e.GET("/gallery", pageHandler.Gallery)
	e.GET("/contact", pageHandler.Contact)

	// Auth flows
	e.GET("/signup", authHandler.SignUpForm)
	e.POST("/signup", authHandler.SignUp)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// Session-gated routes
	e.GET("/dashboard", pageHandler.Dashboard, guard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
