package router

import (
	app "github.com/addisestates/backend/internal/application"
	"github.com/addisestates/backend/internal/container"
	pginfra "github.com/addisestates/backend/internal/infrastructure/postgres"
	handlers "github.com/addisestates/backend/internal/interface/http"
	"github.com/addisestates/backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(container.GetPGPool())
	properties := pginfra.NewPropertyRepository(container.GetPGPool())
	inquiries := pginfra.NewInquiryRepository(container.GetPGPool())

	notifier := &app.Notifier{
		Pub:    container.GetRabbitPub(),
		Cfg:    cfg,
		Logger: logger,
	}

	authSvc := app.NewAuthService(users, container.GetJWT(), logger)
	propertySvc := app.NewPropertyService(
		properties,
		container.GetGCS(),
		cfg.GCSBucket,
		logger,
		container.GetES(),
		cfg.ESPropertiesIndex,
	)
	inquirySvc := app.NewInquiryService(inquiries, properties, notifier, logger)
	adminSvc := app.NewAdminService(users, properties, inquiries, container.GetRedis(), notifier, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), users, container.GetJWT()))
	r.Add(modules.NewPropertyModule(handlers.NewPropertyHandler(propertySvc, logger), users, container.GetJWT()))
	r.Add(modules.NewInquiryModule(handlers.NewInquiryHandler(inquirySvc, logger), users, container.GetJWT()))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), users, container.GetJWT()))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
