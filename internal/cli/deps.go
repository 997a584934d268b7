package cli

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/raptortest/qa-automation/internal/config"
	"github.com/raptortest/qa-automation/internal/handlers"
	"github.com/raptortest/qa-automation/internal/models"
	"github.com/raptortest/qa-automation/internal/services"
	"github.com/raptortest/qa-automation/internal/suites"
)

// SeedUsers are registered at startup when seeding is enabled. The first
// one is the account the login scenarios sign in with.
var SeedUsers = []models.Registration{
	{
		Username:        suites.ValidUsername,
		Email:           suites.ValidUsername,
		Name:            suites.ValidName,
		Password:        suites.ValidPassword,
		ConfirmPassword: suites.ValidPassword,
	},
}

// BuildServerDependencies wires the fixture application around repo. The
// templates are read from fsys; pass nil for the embedded ones.
func BuildServerDependencies(cfg config.ServerConfig, repo services.UserRepository, fsys fs.FS) (ServerDependencies, error) {
	deps := ServerDependencies{ServerConfig: cfg}
	if fsys == nil {
		fsys = handlers.Templates
	}

	auth := services.NewAuthService(repo)
	if cfg.SeedUsers {
		for _, reg := range SeedUsers {
			if err := services.SeedUser(auth, reg); err != nil {
				return deps, err
			}
			log.Printf("Seeded user %s", reg.Username)
		}
	}

	loginHandler, err := handlers.NewLoginHandler(fsys, auth)
	if err != nil {
		return deps, fmt.Errorf("failed to create login handler: %w", err)
	}
	deps.LoginHandler = loginHandler

	signupHandler, err := handlers.NewSignupHandler(fsys, auth)
	if err != nil {
		return deps, fmt.Errorf("failed to create signup handler: %w", err)
	}
	deps.SignupHandler = signupHandler

	dashboardHandler, err := handlers.NewDashboardHandler(fsys, auth)
	if err != nil {
		return deps, fmt.Errorf("failed to create dashboard handler: %w", err)
	}
	deps.DashboardHandler = dashboardHandler

	profileHandler, err := handlers.NewProfileHandler(fsys, auth)
	if err != nil {
		return deps, fmt.Errorf("failed to create profile handler: %w", err)
	}
	deps.ProfileHandler = profileHandler

	settingsHandler, err := handlers.NewSettingsHandler(fsys, auth)
	if err != nil {
		return deps, fmt.Errorf("failed to create settings handler: %w", err)
	}
	deps.SettingsHandler = settingsHandler

	deps.LogoutHandler = handlers.NewLogoutHandler(auth)

	return deps, nil
}
