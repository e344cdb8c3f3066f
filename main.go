package main

import (
	"log"

	"github.com/spf13/cobra"

	"tgpost_go/cmd/migrate"
	"tgpost_go/cmd/serve"
)

func main() {
	root := &cobra.Command{
		Use:   "tgpost",
		Short: "Telegram channels, posts and geography reference admin backend",
		Long: `tgpost keeps Telegram channel metadata, countries, cities and posts
in a relational database and exposes them through a JSON API and a web admin panel.`,
		SilenceUsage: true,
	}
	root.AddCommand(serve.NewServeCommand(), migrate.NewMigrateCommand())

	if err := root.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
