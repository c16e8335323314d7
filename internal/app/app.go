// Package app wires repositories, the validator, and services together for
// the sharing server.
package app

import (
	"database/sql"
	"log/slog"

	"sharegov/internal/config"
	"sharegov/internal/db/repository"
	"sharegov/internal/service/gds"
	"sharegov/internal/validation"
)

// Deps holds the external dependencies that main() must provide: database
// handles, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Services  *gds.Services
	Validator *validation.Validator
}

// New wires all repositories and services from the provided deps.
func New(deps Deps) *App {
	provider := repository.NewProvider(deps.WriteDB, deps.ReadDB)
	validator := validation.New(provider, deps.Logger.With("component", "validator"))

	services := gds.NewServices(validator, gds.Repos{
		Datasets:        repository.NewDatasetRepo(deps.WriteDB, deps.ReadDB),
		Projects:        repository.NewProjectRepo(deps.WriteDB, deps.ReadDB),
		DataShares:      repository.NewDataShareRepo(deps.WriteDB, deps.ReadDB),
		SharedResources: repository.NewSharedResourceRepo(deps.WriteDB, deps.ReadDB),
		ShareInDataset:  repository.NewDataShareInDatasetRepo(deps.WriteDB, deps.ReadDB),
		DatasetProject:  repository.NewDatasetInProjectRepo(deps.WriteDB, deps.ReadDB),
		Audit:           repository.NewAuditRepo(deps.WriteDB, deps.ReadDB),
	})

	return &App{Services: services, Validator: validator}
}
