package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/21musie/Caxora/internal/interface/http"
)

// HealthModule exposes the liveness probe. No auth, no rate limit.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Health)
}
