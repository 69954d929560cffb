package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placementprep/placement-api/internal/container"
	handlers "github.com/placementprep/placement-api/internal/interface/http"
	"github.com/placementprep/placement-api/internal/interface/middleware"
	"github.com/placementprep/placement-api/pkg/helpers"
)

// AuthModule wires the admin login surface.
// Public: POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET /api/session

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)   // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil) // 60 req/min per IP
	userLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT), userLimiter)
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/session", m.Handler.Session)
	}
}
