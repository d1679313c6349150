package main

import (
	"os"

	"github.com/spf13/cobra"

	"sips/internal/interfaces/cli/migrate"
	"sips/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sips",
		Short: "sips - drink recipe sharing service",
		Long:  `sips is the backend for the drink recipe sharing app: catalog, engagement, AI generation, billing, and support.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
