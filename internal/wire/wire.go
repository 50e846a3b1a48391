// Package wire provides dependency injection for the auditking application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/auditking/internal/adapters/cli"
	"github.com/example/auditking/internal/adapters/identity"
	"github.com/example/auditking/internal/adapters/sqlite"
	"github.com/example/auditking/internal/app"
	"github.com/example/auditking/internal/config"
	"github.com/example/auditking/internal/db"
	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/store"
)

var (
	templateService   primary.TemplateService
	inspectionService primary.InspectionService
	actionService     primary.ActionService
	userService       primary.UserService
	once              sync.Once
)

// TemplateService returns the singleton TemplateService instance.
func TemplateService() primary.TemplateService {
	once.Do(initServices)
	return templateService
}

// InspectionService returns the singleton InspectionService instance.
func InspectionService() primary.InspectionService {
	once.Do(initServices)
	return inspectionService
}

// ActionService returns the singleton ActionService instance.
func ActionService() primary.ActionService {
	once.Do(initServices)
	return actionService
}

// UserService returns the singleton UserService instance.
func UserService() primary.UserService {
	once.Do(initServices)
	return userService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfgDir, err := config.Dir()
	if err != nil {
		log.Fatalf("failed to locate config directory: %v", err)
	}
	cfg, err := config.LoadConfig(cfgDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary adapters, then the record store over them.
	kv := sqlite.NewSnapshotStore(database)
	recordStore := store.Open(context.Background(), kv)
	identityProvider := identity.NewSnapshotProvider(recordStore)

	// Services (primary ports implementation).
	templateService = app.NewTemplateService(recordStore)
	inspectionService = app.NewInspectionService(recordStore, cfg.DefaultUnanswered)
	actionService = app.NewActionService(recordStore)
	userService = app.NewUserService(recordStore, identityProvider)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given
// output. This variant allows testing or alternate output destinations.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(inspectionService, out)
}
