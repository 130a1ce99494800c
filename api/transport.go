package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Atomic-Germ/mcp-api-consumer/config"
	"github.com/Atomic-Germ/mcp-api-consumer/constants"
	mcpserver "github.com/Atomic-Germ/mcp-api-consumer/mcp"
	"github.com/Atomic-Germ/mcp-api-consumer/registry"
	"github.com/Atomic-Germ/mcp-api-consumer/telemetry"
	"github.com/Atomic-Germ/mcp-api-consumer/utils"
	"github.com/spf13/cobra"
)

// AttachHTTPHandlers registers all HTTP endpoints to the provided mux
// and records them with the registry for metadata discovery.
func AttachHTTPHandlers(mux *http.ServeMux, svc APIService) {
	registerHTTPMetadata()
	registerSystemEndpoints(mux)
	GenerateHTTPHandlers(mux, svc)
}

// registerHTTPMetadata records all generated HTTP interfaces for discovery
func registerHTTPMetadata() {
	for _, op := range GetAllOperations() {
		if op.SkipHTTP {
			continue
		}
		registry.RegisterInterface(registry.InterfaceMeta{
			ID:          op.ID,
			Type:        registry.HTTP,
			Use:         op.HTTPMethod,
			Path:        op.HTTPPath,
			Description: op.Description,
		})
	}
}

// registerSystemEndpoints registers health check, metadata, and metrics
// endpoints that are not operations
func registerSystemEndpoints(mux *http.ServeMux) {
	registry.RegisterRoute(mux, http.MethodGet, "/metadata", constants.InterfaceDescMetadata, func(w http.ResponseWriter, r *http.Request) {
		b, err := json.Marshal(registry.AllInterfaces())
		if err != nil {
			utils.ErrorCtx(r.Context(), "failed to encode metadata", "error", err)
			utils.WriteHTTPError(w, "failed to encode metadata", http.StatusInternalServerError)
			return
		}
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		w.Write(b)
	})

	registry.RegisterRoute(mux, http.MethodGet, "/healthz", constants.InterfaceDescHealthCheck, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		if _, err := w.Write([]byte(constants.HealthCheckResponse)); err != nil {
			utils.ErrorCtx(r.Context(), "failed to write health check response", "error", err)
		}
	})

	registry.RegisterInterface(registry.InterfaceMeta{
		ID:          "metrics",
		Type:        registry.HTTP,
		Use:         http.MethodGet,
		Path:        "/metrics",
		Description: constants.InterfaceDescMetrics,
	})
	mux.Handle("/metrics", telemetry.MetricsHandler())
}

// BuildMCPToolRegistrations creates all MCP tool registrations and records
// them with the registry for metadata discovery.
func BuildMCPToolRegistrations(svc APIService) []mcpserver.ToolRegistration {
	regs := GenerateMCPTools(svc)
	for _, reg := range regs {
		registry.RegisterInterface(registry.InterfaceMeta{
			ID:          reg.Name,
			Type:        registry.MCP,
			Use:         reg.Name,
			Description: reg.Description,
		})
	}
	return regs
}

// AttachCLICommands registers all generated CLI commands on the root command
// and records the resulting command tree for metadata discovery.
func AttachCLICommands(root *cobra.Command, svc APIService) {
	for _, cmd := range GenerateCLICommands(svc) {
		root.AddCommand(cmd)
	}
	for _, m := range collectCobra(root) {
		registry.RegisterInterface(m)
	}
}

// collectCobra recursively collects metadata for Cobra commands.
func collectCobra(cmd *cobra.Command) []registry.InterfaceMeta {
	metas := []registry.InterfaceMeta{{
		ID:          cmd.CommandPath(),
		Type:        registry.CLI,
		Use:         cmd.Use,
		Description: cmd.Short,
	}}
	for _, sub := range cmd.Commands() {
		metas = append(metas, collectCobra(sub)...)
	}
	return metas
}

// StartHTTPServer runs the HTTP interface until the context is canceled.
// All handlers are wrapped with tracing and request metrics.
func StartHTTPServer(ctx context.Context, cfg *config.Config, svc APIService) error {
	mux := http.NewServeMux()
	AttachHTTPHandlers(mux, svc)

	host := cfg.HTTP.Host
	port := cfg.HTTP.Port
	if port == 0 {
		port = constants.DefaultHTTPPort
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	srv := &http.Server{
		Addr:    addr,
		Handler: telemetry.WrapHandler("http", mux),
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Info("HTTP server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
