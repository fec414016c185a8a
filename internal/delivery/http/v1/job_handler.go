package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/middleware"
	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.PUT("/filter", handler.ApplyFilter)
		jobs.POST("/:id/save", handler.ToggleSaved)
	}
}

// List godoc
// @Summary      List job suggestions
// @Description  Catalog jobs with the session's filter applied and saved flags set
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.JobListing}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	listing, err := h.jobUC.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, strconv.Itoa(listing.Total)+" Jobs Found", listing)
}

// ApplyFilter godoc
// @Summary      Update the job filters
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        filter  body      domain.JobFilter  true  "Search, location and experience"
// @Success      200     {object}  response.Response{data=domain.JobListing}
// @Failure      400     {object}  response.Response
// @Router       /jobs/filter [put]
func (h *JobHandler) ApplyFilter(c *gin.Context) {
	var filter domain.JobFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	listing, err := h.jobUC.ApplyFilter(c.Request.Context(), middleware.SessionID(c), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, strconv.Itoa(listing.Total)+" Jobs Found", listing)
}

// ToggleSaved godoc
// @Summary      Save or unsave a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/save [post]
func (h *JobHandler) ToggleSaved(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	saved, note, err := h.jobUC.ToggleSaved(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Notify(c, http.StatusOK, note, gin.H{"job_id": id, "saved": saved})
}
