package router

import (
	userapp "user-directory/internal/application"
	"user-directory/internal/container"
	repouser "user-directory/internal/domain/repository"
	"user-directory/internal/cache"
	pginfra "user-directory/internal/infrastructure/postgres"
	handlers "user-directory/internal/interface/http"
	"user-directory/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	cfg := container.GetConfig()

	accessor := userapp.NewCacheAside(
		repo,
		cache.NewRedisCache(container.GetRedis()),
		cfg.CacheTTL,
		container.GetLogger(),
	)

	service := userapp.NewService(
		repo,
		accessor,
		container.GetLogger(),
		container.GetRabbitPub(),
		container.GetES(),
		cfg.ESUsersIndex,
	)

	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.New(userDeps.Handler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
