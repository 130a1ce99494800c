package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Atomic-Germ/mcp-api-consumer/api"
	"github.com/Atomic-Germ/mcp-api-consumer/config"
	"github.com/Atomic-Germ/mcp-api-consumer/utils"
)

var (
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'apiconsumer' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apiconsumer",
		Short: "Import, explore, and call REST APIs described by OpenAPI documents",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file, if present
		_ = godotenv.Load()

		if debug {
			utils.SetMode("debug")
		}
	}

	svc := api.NewAPIService()

	rootCmd.AddCommand(
		newServeCmd(svc),
		newMCPCmd(svc),
		newMetadataCmd(),
	)

	// Generated commands: import, request, endpoints, describe, document, ...
	api.AttachCLICommands(rootCmd, svc)

	return rootCmd
}

// loadConfigOrDefault loads the config file, falling back to an empty
// config when the file does not exist.
func loadConfigOrDefault(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Warn("failed to load config %s: %v", path, err)
		}
		return &config.Config{}
	}
	return cfg
}
