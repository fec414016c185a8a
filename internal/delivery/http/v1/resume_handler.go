package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/middleware"
	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/delivery/http/upload"
	"careerai-web/internal/domain"
)

type ResumeHandler struct {
	resumeUC    domain.ResumeUsecase
	maxUploadMB int
}

// NewResumeHandler registers the resume routes; uploadLimit guards the upload
func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase, maxUploadMB int, uploadLimit gin.HandlerFunc) {
	handler := &ResumeHandler{resumeUC: resumeUC, maxUploadMB: maxUploadMB}

	resume := r.Group("/resume")
	{
		resume.GET("", handler.View)
		resume.POST("/file", uploadLimit, handler.SelectFile)
		resume.DELETE("/file", handler.RemoveFile)
		resume.POST("/analysis", handler.StartAnalysis)
		resume.POST("/reset", handler.AnalyzeNew)
	}
}

// View godoc
// @Summary      Get the resume analysis flow
// @Description  While busy, returns progress indicators and ready_at; once the delay has passed the analysis result is revealed
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ResumeView}
// @Router       /resume [get]
func (h *ResumeHandler) View(c *gin.Context) {
	view, note, err := h.resumeUC.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Notify(c, http.StatusOK, note, view)
}

// SelectFile godoc
// @Summary      Upload a resume
// @Description  Accepts PDF or any document media type. Only name, size and type are kept.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file"
// @Success      200     {object}  response.Response{data=domain.ResumeView}
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      413     {object}  response.Response
// @Router       /resume/file [post]
func (h *ResumeHandler) SelectFile(c *gin.Context) {
	file, err := upload.ReadResume(c, h.maxUploadMB)
	if err != nil {
		c.Error(err)
		return
	}

	view, note, err := h.resumeUC.SelectFile(c.Request.Context(), middleware.SessionID(c), file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Notify(c, http.StatusOK, note, view)
}

// RemoveFile godoc
// @Summary      Remove the selected resume
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ResumeView}
// @Failure      409  {object}  response.Response
// @Router       /resume/file [delete]
func (h *ResumeHandler) RemoveFile(c *gin.Context) {
	view, err := h.resumeUC.RemoveFile(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File removed", view)
}

// StartAnalysis godoc
// @Summary      Start analysing the selected resume
// @Tags         resume
// @Produce      json
// @Success      202  {object}  response.Response{data=domain.ResumeView}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /resume/analysis [post]
func (h *ResumeHandler) StartAnalysis(c *gin.Context) {
	view, err := h.resumeUC.StartAnalysis(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "Analysis started", view)
}

// AnalyzeNew godoc
// @Summary      Analyze another resume
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ResumeView}
// @Failure      409  {object}  response.Response
// @Router       /resume/reset [post]
func (h *ResumeHandler) AnalyzeNew(c *gin.Context) {
	view, err := h.resumeUC.AnalyzeNew(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Ready for a new resume", view)
}
