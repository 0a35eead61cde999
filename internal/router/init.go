package router

import (
	"github.com/21musie/Caxora/internal/application"
	"github.com/21musie/Caxora/internal/container"
	pginfra "github.com/21musie/Caxora/internal/infrastructure/postgres"
	handlers "github.com/21musie/Caxora/internal/interface/http"
	"github.com/21musie/Caxora/internal/router/modules"
	"github.com/21musie/Caxora/pkg/helpers"
)

func buildAuthService() *application.Service {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewService(
		repo,
		helpers.BcryptHasher{},
		container.GetJWT(),
		container.GetLogger(),
	)
	svc.Pub = container.GetRabbitPub()
	svc.MailEnabled = container.GetConfig().MailSendEnabled
	return svc
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	svc := buildAuthService()
	authHandler := handlers.NewAuthHandler(svc, container.GetLogger())
	healthHandler := handlers.NewHealthHandler(container.GetPGPool())

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewHealthModule(healthHandler))
}
