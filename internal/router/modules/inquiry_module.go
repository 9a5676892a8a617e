package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/addisestates/backend/internal/container"
	repo "github.com/addisestates/backend/internal/domain/repository"
	handlers "github.com/addisestates/backend/internal/interface/http"
	"github.com/addisestates/backend/internal/interface/middleware"
	"github.com/addisestates/backend/pkg/helpers"
)

type InquiryModule struct {
	Handler *handlers.InquiryHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewInquiryModule(h *handlers.InquiryHandler, users repo.UserRepository, jwt *helpers.JWTManager) *InquiryModule {
	return &InquiryModule{Handler: h, Users: users, JWT: jwt}
}

func (m *InquiryModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.POST("/inquiries", m.Handler.Create)
		auth.GET("/inquiries/received", m.Handler.Received)
		auth.GET("/inquiries/sent", m.Handler.Sent)
		auth.PUT("/inquiries/:id/respond", m.Handler.Respond)
		auth.PATCH("/inquiries/:id/read", m.Handler.MarkRead)
	}
}
