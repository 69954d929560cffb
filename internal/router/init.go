package router

import (
	"github.com/placementprep/placement-api/internal/application"
	"github.com/placementprep/placement-api/internal/container"
	"github.com/placementprep/placement-api/internal/infrastructure/mongodb"
	handlers "github.com/placementprep/placement-api/internal/interface/http"
	"github.com/placementprep/placement-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup to wire the feature modules from
// the container singletons.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()
	rdb := container.GetRedis()
	jwt := container.GetJWT()

	authSvc := application.NewAuthService(mongodb.NewUserRepository(db), jwt, rdb, logger)
	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	r.Add(modules.NewAuthModule(authHandler, jwt))

	companySvc := application.NewCompanyService(mongodb.NewCompanyRepository(db), rdb, logger)
	r.Add(modules.NewCompanyModule(handlers.NewCompanyHandler(companySvc, logger), jwt))

	tipSvc := application.NewTipService(mongodb.NewTipRepository(db), rdb, logger)
	r.Add(modules.NewTipModule(handlers.NewTipHandler(tipSvc, logger), jwt))

	interviewSvc := application.NewInterviewService(
		mongodb.NewInterviewRepository(db),
		notifier(),
		container.GetES(),
		cfg.ESInterviewIndex,
		cfg.NotifyEmail,
		logger,
	)
	r.Add(modules.NewInterviewModule(handlers.NewInterviewHandler(interviewSvc, logger), jwt))
}

// notifier returns nil (not a non-nil interface wrapping a nil pointer) when
// the publisher was never configured.
func notifier() application.Notifier {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}
