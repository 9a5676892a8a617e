package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/addisestates/backend/internal/container"
	"github.com/addisestates/backend/internal/domain/entity"
	repo "github.com/addisestates/backend/internal/domain/repository"
	handlers "github.com/addisestates/backend/internal/interface/http"
	"github.com/addisestates/backend/internal/interface/middleware"
	"github.com/addisestates/backend/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, users repo.UserRepository, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.Users, m.JWT))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		admin.GET("/dashboard", m.Handler.Dashboard)

		admin.GET("/users", m.Handler.ListUsers)
		admin.PUT("/users/:id/approve", m.Handler.ApproveUser)
		admin.PUT("/users/:id/reject", m.Handler.RejectUser)
		admin.DELETE("/users/:id", m.Handler.DeleteUser)

		admin.GET("/properties", m.Handler.ListProperties)
		admin.PUT("/properties/:id/approve", m.Handler.ApproveProperty)
		admin.PUT("/properties/:id/reject", m.Handler.RejectProperty)
	}
}
