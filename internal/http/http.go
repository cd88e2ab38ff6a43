package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wongco/jobly/internal/appcontext"
	"github.com/wongco/jobly/internal/http/middleware"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(ctx.Logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	h.engine.POST("/login", Login(h.context))

	h.setupUserRoutes()
	h.setupCompanyRoutes()
	h.setupJobRoutes()

	h.engine.NoRoute(func(c *gin.Context) {
		ErrorResponse(c, http.StatusNotFound, "Not Found")
	})
}

func (h *APIService) setupUserRoutes() {
	users := h.engine.Group("/users")

	// The user directory is public; everything else on a user is owner-only.
	users.POST("", CreateUser(h.context))
	users.GET("", GetUsers(h.context))
	users.GET("/:username", middleware.RequireSameUser(h.context), GetUser(h.context))
	users.PATCH("/:username", middleware.RequireSameUser(h.context), UpdateUser(h.context))
	users.DELETE("/:username", middleware.RequireSameUser(h.context), DeleteUser(h.context))
	users.GET("/:username/applications", middleware.RequireSameUser(h.context), GetUserApplications(h.context))
}

func (h *APIService) setupCompanyRoutes() {
	companies := h.engine.Group("/companies")

	companies.GET("", middleware.RequireAuth(h.context), GetCompanies(h.context))
	companies.POST("", middleware.RequireAdmin(h.context), CreateCompany(h.context))
	companies.GET("/:handle", middleware.RequireAuth(h.context), GetCompany(h.context))
	companies.PATCH("/:handle", middleware.RequireAdmin(h.context), UpdateCompany(h.context))
	companies.DELETE("/:handle", middleware.RequireAdmin(h.context), DeleteCompany(h.context))
}

func (h *APIService) setupJobRoutes() {
	jobs := h.engine.Group("/jobs")

	jobs.GET("", middleware.RequireAuth(h.context), GetJobs(h.context))
	jobs.POST("", middleware.RequireAdmin(h.context), CreateJob(h.context))
	jobs.GET("/:id", middleware.RequireAuth(h.context), GetJob(h.context))
	jobs.PATCH("/:id", middleware.RequireAdmin(h.context), UpdateJob(h.context))
	jobs.DELETE("/:id", middleware.RequireAdmin(h.context), DeleteJob(h.context))
	jobs.POST("/:id/apply", middleware.RequireAuth(h.context), ApplyToJob(h.context))
}
