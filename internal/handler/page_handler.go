package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roastery/internal/model"
	"roastery/internal/view"
)

// PageHandler renders the content pages.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) render(c echo.Context, name string) error {
	return c.Render(http.StatusOK, name, view.Data{Flash: view.PopFlash(c)})
}

func (h *PageHandler) Home(c echo.Context) error    { return h.render(c, "home.html") }
func (h *PageHandler) Menu(c echo.Context) error    { return h.render(c, "menu.html") }
func (h *PageHandler) Shop(c echo.Context) error    { return h.render(c, "shop.html") }
func (h *PageHandler) Gallery(c echo.Context) error { return h.render(c, "gallery.html") }
func (h *PageHandler) Contact(c echo.Context) error { return h.render(c, "contact.html") }

// Dashboard greets the signed-in user. The session guard has already
// resolved the user into the context.
func (h *PageHandler) Dashboard(c echo.Context) error {
	user, ok := c.Get(UserContextKey).(*model.User)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return c.Render(http.StatusOK, "dashboard.html", view.Data{
		Flash:    view.PopFlash(c),
		Username: user.Username,
	})
}
