package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roastery/internal/handler"
	"roastery/internal/service"
	"roastery/internal/session"
	"roastery/internal/view"
)

// RequireSession guards authenticated routes. It resolves the session
// cookie to a User before the handler body runs; anything short of a valid
// session for an existing user redirects to the login form.
func RequireSession(sessions session.Store, users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(handler.SessionCookie)
			if err != nil || ck.Value == "" {
				return toLogin(c)
			}

			userID, err := sessions.Resolve(c.Request().Context(), ck.Value)
			if err != nil {
				return toLogin(c)
			}

			user, err := users.GetUser(c.Request().Context(), userID)
			if err != nil {
				return toLogin(c)
			}

			c.Set(handler.UserContextKey, user)
			return next(c)
		}
	}
}

func toLogin(c echo.Context) error {
	// drop whatever cookie was presented so the client stops sending it
	c.SetCookie(&http.Cookie{
		Name:     handler.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	view.SetFlash(c, "Please log in")
	return c.Redirect(http.StatusSeeOther, "/login")
}
