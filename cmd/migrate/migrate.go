package migrate

import (
	"context"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"tgpost_go/internal/config"
	"tgpost_go/pkg/storage"
)

const (
	configFlag = "config"
	driverFlag = "driver"
	dsnFlag    = "dsn"
	printFlag  = "print"
)

var migrateFlags = map[string]cobraflags.Flag{
	configFlag: &cobraflags.StringFlag{
		Name:  configFlag,
		Value: "",
		Usage: "Path to the configuration file (yaml, toml or json)",
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
	printFlag: &cobraflags.StringFlag{
		Name:  printFlag,
		Value: "",
		Usage: "Print the schema for a dialect (postgres, sqlite, mysql) instead of applying it",
	},
}

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		Long: `Create missing tables and indexes in the configured database.

Existing tables are left untouched. Use --print <dialect> to output the
schema without connecting to a database.`,
		RunE: migrateCommand,
	}
	cobraflags.RegisterMap(cmd, migrateFlags)
	return cmd
}

func migrateCommand(cmd *cobra.Command, _ []string) error {
	if dialect := migrateFlags[printFlag].GetString(); dialect != "" {
		return printSchema(cmd, dialect)
	}

	cfg, err := config.Load(migrateFlags[configFlag].GetString(), map[string]string{
		"database.driver": migrateFlags[driverFlag].GetString(),
		"database.dsn":    migrateFlags[dsnFlag].GetString(),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := storage.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, 1)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.EnsureSchema(ctx); err != nil {
		return err
	}
	cmd.Println("Schema is up to date")
	return nil
}

func printSchema(cmd *cobra.Command, driver string) error {
	dialect, err := storage.DialectForDriver(driver)
	if err != nil {
		return err
	}
	statements, err := storage.SchemaStatements(dialect)
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		cmd.Println(stmt + ";")
		cmd.Println()
	}
	return nil
}
