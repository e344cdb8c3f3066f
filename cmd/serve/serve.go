package serve

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"tgpost_go/internal/config"
	"tgpost_go/internal/server"
	"tgpost_go/pkg/storage"
)

const (
	configFlag = "config"
	portFlag   = "port"
	driverFlag = "driver"
	dsnFlag    = "dsn"
)

var serveFlags = map[string]cobraflags.Flag{
	configFlag: &cobraflags.StringFlag{
		Name:  configFlag,
		Value: "",
		Usage: "Path to the configuration file (yaml, toml or json)",
	},
	portFlag: &cobraflags.StringFlag{
		Name:  portFlag,
		Value: "",
		Usage: "HTTP port, overrides server.port and the PORT environment variable",
	},
	driverFlag: &cobraflags.StringFlag{
		Name:  driverFlag,
		Value: "",
		Usage: "Database driver (postgres, pgx, sqlite, mysql)",
	},
	dsnFlag: &cobraflags.StringFlag{
		Name:  dsnFlag,
		Value: "",
		Usage: "Database connection string",
	},
}

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the admin panel",
		Long: `Run the HTTP API and the admin panel.

Missing tables are created on startup, so the first run against an empty
database needs no separate migration step.`,
		RunE: serveCommand,
	}
	cobraflags.RegisterMap(cmd, serveFlags)
	return cmd
}

func serveCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveFlags[configFlag].GetString(), map[string]string{
		"server.port":     serveFlags[portFlag].GetString(),
		"database.driver": serveFlags[driverFlag].GetString(),
		"database.dsn":    serveFlags[dsnFlag].GetString(),
	})
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)

	// Инициализация подключения к БД
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := storage.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, cfg.Database.MaxOpenConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.EnsureSchema(ctx); err != nil {
		return err
	}

	// Настройка роутера
	r := server.SetupRouter(pool, cfg)

	// Запуск сервера
	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
