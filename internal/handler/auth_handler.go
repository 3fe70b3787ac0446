package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "roastery/internal/errors"
	"roastery/internal/service"
	"roastery/internal/view"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session_token"

// UserContextKey is where the session guard stores the resolved *model.User.
const UserContextKey = "user"

// AuthHandler handles the signup, login and logout forms.
type AuthHandler struct {
	authService service.AuthService
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new auth handler. sessionTTL bounds the cookie
// lifetime to match the server-side session.
func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

// SignUpRequest represents the signup form.
type SignUpRequest struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignUpForm renders the signup page.
func (h *AuthHandler) SignUpForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", view.Data{Flash: view.PopFlash(c)})
}

// SignUp creates a new account and sends the user to the login form.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlash(c, "Please check your input.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlash(c, "Please check your input.")
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	if _, err := h.authService.SignUp(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			view.SetFlash(c, "Email already registered!")
			return c.Redirect(http.StatusSeeOther, "/signup")
		}
		return err
	}

	view.SetFlash(c, "Account created! Please login.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", view.Data{Flash: view.PopFlash(c)})
}

// Login authenticates the user, attaches the session cookie and sends them
// to the dashboard.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlash(c, "Invalid credentials")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlash(c, "Invalid credentials")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			view.SetFlash(c, "Invalid credentials")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return err
	}

	c.SetCookie(h.sessionCookie(token, int(h.sessionTTL.Seconds())))
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout invalidates the current session, if any, and goes home. Safe to
// call without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), ck.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessionCookie("", -1))
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
