package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placementprep/placement-api/internal/container"
	handlers "github.com/placementprep/placement-api/internal/interface/http"
	"github.com/placementprep/placement-api/internal/interface/middleware"
	"github.com/placementprep/placement-api/pkg/helpers"
)

// CompanyModule wires company routes.
// Public: GET /api/companies, GET /api/featured-companies
// Protected: POST/PUT /api/companies, DELETE /api/companies/:id

type CompanyModule struct {
	Handler *handlers.CompanyHandler
	JWT     *helpers.JWTManager
}

func NewCompanyModule(h *handlers.CompanyHandler, jwt *helpers.JWTManager) *CompanyModule {
	return &CompanyModule{Handler: h, JWT: jwt}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	rg.GET("/companies", m.Handler.List)
	rg.GET("/featured-companies", m.Handler.Featured)

	adminLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil) // 120 req/min per admin

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT), adminLimiter)
	{
		auth.POST("/companies", m.Handler.Create)
		auth.PUT("/companies", m.Handler.Update)
		auth.DELETE("/companies/:id", m.Handler.Delete)
	}
}
