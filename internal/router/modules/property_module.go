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

type PropertyModule struct {
	Handler *handlers.PropertyHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewPropertyModule(h *handlers.PropertyHandler, users repo.UserRepository, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Handler: h, Users: users, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	// Public browse surface, limited per IP.
	browseLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/properties", browseLimiter, m.Handler.List)
	rg.GET("/properties/search", browseLimiter, m.Handler.Search)
	rg.GET("/properties/:id", browseLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/properties/my/listings", m.Handler.Mine)

		// Ownership checks for existing listings live in the service.
		auth.PUT("/properties/:id", m.Handler.Update)
		auth.DELETE("/properties/:id", m.Handler.Delete)
		auth.POST("/properties/:id/images", m.Handler.UploadImages)

		// New listings need an approved seller/landlord/agent account.
		listing := auth.Group("/")
		listing.Use(middleware.RequireRoles(entity.ListingRoles...))
		listing.Use(middleware.RequireApproved())
		{
			listing.POST("/properties", m.Handler.Create)
		}
	}
}
