package v1

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"careerai-web/config"
	"careerai-web/internal/delivery/http/middleware"
	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/delivery/http/web"
	"careerai-web/internal/domain"
	"careerai-web/internal/usecase"
	"careerai-web/pkg/session"
)

type RouterDeps struct {
	ContentUC  domain.ContentUsecase
	GuidanceUC domain.GuidanceUsecase
	ResumeUC   domain.ResumeUsecase
	JobUC      domain.JobUsecase
	SessionUC  domain.SessionUsecase
	HealthUC   usecase.HealthUsecase
	Signer     *session.TokenSigner
	Redis      *goredis.Client // nil keeps rate limits in process
	Templates  *template.Template
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()
	r.SetHTMLTemplate(deps.Templates)
	r.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.CookieSecure))
	r.Use(middleware.RateLimitMiddleware(deps.Redis, middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindow())))
	// Multipart framing adds a little on top of the file itself
	r.Use(middleware.BodyLimitMiddleware(cfg.MaxUploadBytes() + 1<<20))
	r.Use(middleware.SessionMiddleware(deps.Signer, cfg.CookieSecure))
	r.Use(middleware.CSRFMiddleware(cfg.CookieSecure))
	r.Use(middleware.ErrorHandler())

	uploadLimit := middleware.RateLimitMiddleware(deps.Redis, middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, cfg.RateLimitWindow()))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// HTML pages
	pages := web.NewHandler(&r.RouterGroup, web.HandlerDeps{
		ContentUC:   deps.ContentUC,
		GuidanceUC:  deps.GuidanceUC,
		ResumeUC:    deps.ResumeUC,
		JobUC:       deps.JobUC,
		SessionUC:   deps.SessionUC,
		MaxUploadMB: cfg.MaxUploadMB,
	}, uploadLimit)

	v1 := r.Group(middleware.APIPrefix)

	// Health Check
	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewContentHandler(v1, deps.ContentUC)
	NewGuidanceHandler(v1, deps.GuidanceUC)
	NewResumeHandler(v1, deps.ResumeUC, cfg.MaxUploadMB, uploadLimit)
	NewJobHandler(v1, deps.JobUC)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, middleware.APIPrefix) {
			response.Error(c, http.StatusNotFound, "Route not found", nil)
			return
		}
		pages.NotFound(c)
	})

	return r
}
