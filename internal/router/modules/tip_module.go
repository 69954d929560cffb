package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placementprep/placement-api/internal/container"
	handlers "github.com/placementprep/placement-api/internal/interface/http"
	"github.com/placementprep/placement-api/internal/interface/middleware"
	"github.com/placementprep/placement-api/pkg/helpers"
)

// TipModule wires tip routes.
// Public: GET /api/tips, GET /api/latest-tips
// Protected: POST/PUT /api/tips, DELETE /api/tips/:id

type TipModule struct {
	Handler *handlers.TipHandler
	JWT     *helpers.JWTManager
}

func NewTipModule(h *handlers.TipHandler, jwt *helpers.JWTManager) *TipModule {
	return &TipModule{Handler: h, JWT: jwt}
}

func (m *TipModule) Register(rg *gin.RouterGroup) {
	rg.GET("/tips", m.Handler.List)
	rg.GET("/latest-tips", m.Handler.Latest)

	adminLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil) // 120 req/min per admin

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT), adminLimiter)
	{
		auth.POST("/tips", m.Handler.Create)
		auth.PUT("/tips", m.Handler.Update)
		auth.DELETE("/tips/:id", m.Handler.Delete)
	}
}
