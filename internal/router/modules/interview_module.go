package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placementprep/placement-api/internal/container"
	handlers "github.com/placementprep/placement-api/internal/interface/http"
	"github.com/placementprep/placement-api/internal/interface/middleware"
	"github.com/placementprep/placement-api/pkg/helpers"
)

// InterviewModule wires the interview-experience routes.
// Public: POST /api/interview-data (the submission form)
// Protected: GET /api/interview-data, GET /api/interview-data/search,
// GET/DELETE /api/interview-data/:id

type InterviewModule struct {
	Handler *handlers.InterviewHandler
	JWT     *helpers.JWTManager
}

func NewInterviewModule(h *handlers.InterviewHandler, jwt *helpers.JWTManager) *InterviewModule {
	return &InterviewModule{Handler: h, JWT: jwt}
}

func (m *InterviewModule) Register(rg *gin.RouterGroup) {
	// anonymous submissions get a tight per-IP limit; internal probes bypass it
	submitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	adminLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil) // 120 req/min per admin

	rg.POST("/interview-data", submitLimiter, m.Handler.Submit)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT), adminLimiter)
	{
		auth.GET("/interview-data", m.Handler.List)
		auth.GET("/interview-data/search", m.Handler.Search)
		auth.GET("/interview-data/:id", m.Handler.GetByID)
		auth.DELETE("/interview-data/:id", m.Handler.Delete)
	}
}
