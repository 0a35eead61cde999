package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/21musie/Caxora/internal/container"
	handlers "github.com/21musie/Caxora/internal/interface/http"
	"github.com/21musie/Caxora/internal/interface/middleware"
	"github.com/21musie/Caxora/pkg/helpers"
)

// AuthModule wires the auth HTTP handlers into routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me (bearer token)
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
