package web

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/middleware"
	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
	"careerai-web/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// navItem is one entry of the header navigation
type navItem struct {
	Label string
	Route string
}

var navigation = []navItem{
	{Label: "Dashboard", Route: "/dashboard"},
	{Label: "Career Guidance", Route: "/career-guidance"},
	{Label: "Resume Parsing", Route: "/resume-parsing"},
	{Label: "Job Suggestions", Route: "/job-suggestions"},
}

// Page is the data every template receives
type Page struct {
	Title          string
	Brand          string
	Footer         string
	Active         string
	Nav            []navItem
	CSRFToken      string
	Flashes        []*domain.Notification
	RefreshSeconds int
	RequestID      string
	Data           interface{}
}

var funcs = template.FuncMap{
	"percent": func(v float64) string { return fmt.Sprintf("%.0f", v) },
	"join":    strings.Join,
	"inc":     func(i int) int { return i + 1 },
}

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// refreshAfter is the whole number of seconds until t, at least one
func refreshAfter(t time.Time, now time.Time) int {
	secs := int(math.Ceil(t.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

func (h *Handler) page(c *gin.Context, title, active string, data interface{}) Page {
	p := Page{
		Title:     title,
		Brand:     "CareerAI",
		Active:    active,
		Nav:       navigation,
		CSRFToken: middleware.CSRFToken(c),
		RequestID: response.RequestID(c),
		Data:      data,
	}
	if home, err := h.contentUC.Home(c.Request.Context()); err == nil {
		p.Brand = home.Brand
		p.Footer = home.Footer
	}

	flash, err := h.sessionUC.PopFlash(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		logger.Log.Warn("failed to read flash", "error", err, "request_id", p.RequestID)
	}
	p.notify(flash)
	return p
}

// notify appends n to the toasts shown on this render
func (p *Page) notify(n *domain.Notification) {
	if n != nil {
		p.Flashes = append(p.Flashes, n)
	}
}

// render writes a page with status 200
func (h *Handler) render(c *gin.Context, name string, p Page) {
	c.HTML(http.StatusOK, name, p)
}

// redirect finishes a form post: the notification becomes the next page's
// flash and the browser is sent back with 303 See Other.
func (h *Handler) redirect(c *gin.Context, to string, note *domain.Notification) {
	if err := h.sessionUC.SetFlash(c.Request.Context(), middleware.SessionID(c), note); err != nil {
		logger.Log.Warn("failed to store flash", "error", err, "request_id", response.RequestID(c))
	}
	c.Redirect(http.StatusSeeOther, to)
}

// fail handles a use case error on a form post. Client errors become an
// error flash on the same page; anything else renders the error page.
func (h *Handler) fail(c *gin.Context, to string, err error) {
	if appErr, ok := apperror.As(err); ok && appErr.Code < http.StatusInternalServerError {
		h.redirect(c, to, domain.Failure(appErr.Message))
		return
	}
	h.errorPage(c, err)
}

func (h *Handler) errorPage(c *gin.Context, err error) {
	logger.Log.Error("page failed", "error", err, "path", c.Request.URL.Path, "request_id", response.RequestID(c))
	c.HTML(http.StatusInternalServerError, "error.html", Page{
		Title:     "Something went wrong",
		Brand:     "CareerAI",
		Nav:       navigation,
		RequestID: response.RequestID(c),
		Data:      "An unexpected error occurred. Please try again later.",
	})
}
