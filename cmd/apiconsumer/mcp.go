package main

import (
	"log"

	"github.com/Atomic-Germ/mcp-api-consumer/api"
	"github.com/Atomic-Germ/mcp-api-consumer/constants"
	mcpserver "github.com/Atomic-Germ/mcp-api-consumer/mcp"
	"github.com/spf13/cobra"
)

// newMCPCmd creates the 'mcp' subcommand and its subcommands.
func newMCPCmd(svc api.APIService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
	}
	cmd.AddCommand(newMCPServeCmd(svc))
	return cmd
}

func newMCPServeCmd(svc api.APIService) *cobra.Command {
	var stdio bool
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API consumer as an MCP server (stdio or HTTP)",
		Run: func(cmd *cobra.Command, args []string) {
			tools := api.BuildMCPToolRegistrations(svc)
			if err := mcpserver.Serve(configPath, debug, stdio, addr, tools); err != nil {
				log.Fatalf("MCP server failed: %v", err)
			}
		},
	}
	cmd.Flags().BoolVar(&stdio, "stdio", true, "serve over stdin/stdout instead of HTTP (default)")
	cmd.Flags().StringVar(&addr, "addr", constants.DefaultMCPAddr, "listen address for HTTP mode")
	return cmd
}
