package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/middleware"
	"careerai-web/internal/delivery/http/upload"
	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
)

const (
	routeGuidance = "/career-guidance"
	routeResume   = "/resume-parsing"
	routeJobs     = "/job-suggestions"
)

type Handler struct {
	contentUC   domain.ContentUsecase
	guidanceUC  domain.GuidanceUsecase
	resumeUC    domain.ResumeUsecase
	jobUC       domain.JobUsecase
	sessionUC   domain.SessionUsecase
	maxUploadMB int
	now         func() time.Time
}

type HandlerDeps struct {
	ContentUC   domain.ContentUsecase
	GuidanceUC  domain.GuidanceUsecase
	ResumeUC    domain.ResumeUsecase
	JobUC       domain.JobUsecase
	SessionUC   domain.SessionUsecase
	MaxUploadMB int
	Now         func() time.Time
}

// NewHandler registers the HTML pages and their form posts
func NewHandler(r *gin.RouterGroup, deps HandlerDeps, uploadLimit gin.HandlerFunc) *Handler {
	h := &Handler{
		contentUC:   deps.ContentUC,
		guidanceUC:  deps.GuidanceUC,
		resumeUC:    deps.ResumeUC,
		jobUC:       deps.JobUC,
		sessionUC:   deps.SessionUC,
		maxUploadMB: deps.MaxUploadMB,
		now:         deps.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}

	r.GET("/", h.Home)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/login", h.Unavailable)
	r.GET("/register", h.Unavailable)

	guidance := r.Group(routeGuidance)
	{
		guidance.GET("", h.Guidance)
		guidance.POST("/user-type", h.ChooseUserType)
		guidance.POST("/answer", h.SelectAnswer)
		guidance.POST("/next", h.NextQuestion)
		guidance.POST("/previous", h.PreviousQuestion)
		guidance.POST("/profile", h.SaveProfile)
		guidance.POST("/profile/submit", h.SubmitProfile)
		guidance.POST("/back", h.GuidanceBack)
		guidance.POST("/restart", h.GuidanceRestart)
	}

	resume := r.Group(routeResume)
	{
		resume.GET("", h.Resume)
		resume.POST("/file", uploadLimit, h.SelectFile)
		resume.POST("/file/remove", h.RemoveFile)
		resume.POST("/analysis", h.StartAnalysis)
		resume.POST("/reset", h.AnalyzeNew)
	}

	jobs := r.Group(routeJobs)
	{
		jobs.GET("", h.Jobs)
		jobs.POST("/filter", h.FilterJobs)
		jobs.POST("/:id/save", h.ToggleSaved)
	}

	return h
}

// ============================================================================
// Static pages
// ============================================================================

func (h *Handler) Home(c *gin.Context) {
	home, err := h.contentUC.Home(c.Request.Context())
	if err != nil {
		h.errorPage(c, err)
		return
	}
	h.render(c, "home.html", h.page(c, "AI-Powered Career Guidance", "", home))
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.contentUC.Dashboard(c.Request.Context())
	if err != nil {
		h.errorPage(c, err)
		return
	}
	h.render(c, "dashboard.html", h.page(c, "Dashboard", "/dashboard", dashboard))
}

// Unavailable stands in for sign-in and registration
func (h *Handler) Unavailable(c *gin.Context) {
	h.render(c, "unavailable.html", h.page(c, "Not available", "", c.Request.URL.Path))
}

// NotFound renders the 404 page
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", h.page(c, "Page not found", "", c.Request.URL.Path))
}

// ============================================================================
// Career guidance
// ============================================================================

func (h *Handler) Guidance(c *gin.Context) {
	view, err := h.guidanceUC.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.errorPage(c, err)
		return
	}
	h.render(c, "guidance.html", h.page(c, "Career Guidance", routeGuidance, view))
}

func (h *Handler) ChooseUserType(c *gin.Context) {
	userType := domain.UserType(c.PostForm("user_type"))
	if _, err := h.guidanceUC.ChooseUserType(c.Request.Context(), middleware.SessionID(c), userType); err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, nil)
}

func (h *Handler) SelectAnswer(c *gin.Context) {
	if _, err := h.guidanceUC.SelectAnswer(c.Request.Context(), middleware.SessionID(c), c.PostForm("option")); err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, nil)
}

// NextQuestion records the radio choice sent with the form, if any, then
// advances.
func (h *Handler) NextQuestion(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	if option := c.PostForm("option"); option != "" {
		if _, err := h.guidanceUC.SelectAnswer(ctx, sessionID, option); err != nil {
			h.fail(c, routeGuidance, err)
			return
		}
	}

	_, note, err := h.guidanceUC.NextQuestion(ctx, sessionID)
	if err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, note)
}

// PreviousQuestion keeps a radio choice sent with the form before stepping
// back.
func (h *Handler) PreviousQuestion(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	if option := c.PostForm("option"); option != "" {
		if _, err := h.guidanceUC.SelectAnswer(ctx, sessionID, option); err != nil {
			h.fail(c, routeGuidance, err)
			return
		}
	}

	if _, err := h.guidanceUC.PreviousQuestion(ctx, sessionID); err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, nil)
}

func (h *Handler) SaveProfile(c *gin.Context) {
	var draft domain.ProfessionalProfileDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.fail(c, routeGuidance, apperror.BadRequest("Invalid form data"))
		return
	}
	if _, err := h.guidanceUC.UpdateProfileDraft(c.Request.Context(), middleware.SessionID(c), draft); err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, nil)
}

func (h *Handler) SubmitProfile(c *gin.Context) {
	var draft domain.ProfessionalProfileDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.fail(c, routeGuidance, apperror.BadRequest("Invalid form data"))
		return
	}
	_, note, err := h.guidanceUC.SubmitProfile(c.Request.Context(), middleware.SessionID(c), draft)
	if err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, note)
}

func (h *Handler) GuidanceBack(c *gin.Context) {
	if _, err := h.guidanceUC.Back(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, nil)
}

func (h *Handler) GuidanceRestart(c *gin.Context) {
	if _, err := h.guidanceUC.Restart(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.fail(c, routeGuidance, err)
		return
	}
	h.redirect(c, routeGuidance, nil)
}

// ============================================================================
// Resume parsing
// ============================================================================

// Resume renders the flow. While busy the page refreshes itself when the
// analysis is due.
func (h *Handler) Resume(c *gin.Context) {
	view, note, err := h.resumeUC.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.errorPage(c, err)
		return
	}

	p := h.page(c, "Resume Parsing", routeResume, view)
	p.notify(note)
	if view.Phase == domain.ResumeBusy && view.ReadyAt != nil {
		p.RefreshSeconds = refreshAfter(*view.ReadyAt, h.now())
	}
	h.render(c, "resume.html", p)
}

func (h *Handler) SelectFile(c *gin.Context) {
	file, err := upload.ReadResume(c, h.maxUploadMB)
	if err != nil {
		h.fail(c, routeResume, err)
		return
	}
	_, note, err := h.resumeUC.SelectFile(c.Request.Context(), middleware.SessionID(c), file)
	if err != nil {
		h.fail(c, routeResume, err)
		return
	}
	h.redirect(c, routeResume, note)
}

func (h *Handler) RemoveFile(c *gin.Context) {
	if _, err := h.resumeUC.RemoveFile(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.fail(c, routeResume, err)
		return
	}
	h.redirect(c, routeResume, nil)
}

func (h *Handler) StartAnalysis(c *gin.Context) {
	if _, err := h.resumeUC.StartAnalysis(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.fail(c, routeResume, err)
		return
	}
	h.redirect(c, routeResume, nil)
}

func (h *Handler) AnalyzeNew(c *gin.Context) {
	if _, err := h.resumeUC.AnalyzeNew(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.fail(c, routeResume, err)
		return
	}
	h.redirect(c, routeResume, nil)
}

// ============================================================================
// Job suggestions
// ============================================================================

func (h *Handler) Jobs(c *gin.Context) {
	listing, err := h.jobUC.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.errorPage(c, err)
		return
	}
	h.render(c, "jobs.html", h.page(c, "Job Suggestions", routeJobs, listing))
}

func (h *Handler) FilterJobs(c *gin.Context) {
	var filter domain.JobFilter
	if err := c.ShouldBind(&filter); err != nil {
		h.fail(c, routeJobs, apperror.BadRequest("Invalid form data"))
		return
	}
	if _, err := h.jobUC.ApplyFilter(c.Request.Context(), middleware.SessionID(c), filter); err != nil {
		h.fail(c, routeJobs, err)
		return
	}
	h.redirect(c, routeJobs, nil)
}

func (h *Handler) ToggleSaved(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, routeJobs, apperror.NotFound("Job not found"))
		return
	}
	_, note, err := h.jobUC.ToggleSaved(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		h.fail(c, routeJobs, err)
		return
	}
	h.redirect(c, routeJobs+"#job-"+c.Param("id"), note)
}
