package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/tmarler/pawshift/internal/config"
	"github.com/tmarler/pawshift/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}
