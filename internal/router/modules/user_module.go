package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"user-directory/internal/container"
	handlers "user-directory/internal/interface/http"
	"user-directory/internal/interface/middleware"
)

// Module wires the directory HTTP surface into routes:
// POST /api/users, GET /api/users/:id, POST /api/users/:id/ban,
// GET /api/users/search

type Module struct {
	Handler *handlers.UserHandler
}

func New(h *handlers.UserHandler) *Module {
	return &Module{Handler: h}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil)
	banLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/users", createLimiter, m.Handler.Create)
	rg.GET("/users/search", m.Handler.Search)
	rg.GET("/users/:id", m.Handler.Get)
	rg.POST("/users/:id/ban", banLimiter, m.Handler.Ban)
}
