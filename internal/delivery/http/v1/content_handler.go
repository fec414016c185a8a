package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/domain"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

func NewContentHandler(r *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	content := r.Group("/content")
	{
		content.GET("/home", handler.Home)
		content.GET("/dashboard", handler.Dashboard)
	}
}

// Home godoc
// @Summary      Home page content
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.HomeContent}
// @Router       /content/home [get]
func (h *ContentHandler) Home(c *gin.Context) {
	home, err := h.contentUC.Home(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Home content", home)
}

// Dashboard godoc
// @Summary      Dashboard content
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardContent}
// @Router       /content/dashboard [get]
func (h *ContentHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.contentUC.Dashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard content", dashboard)
}
