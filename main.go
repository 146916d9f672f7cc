// Confluence MCP Server - A Model Context Protocol server for Confluence Cloud
// Exposes spaces and pages as MCP resources and provides CQL search tools
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"confluencemcp/internal/confluence"
	"confluencemcp/internal/resources"
	"confluencemcp/tools"
	"confluencemcp/tracing"
)

const (
	ServerName    = "confluence-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Confluence MCP Server provides read-only access to a Confluence Cloud instance.

Resources:
- confluence://spaces/{key}: content listing of a space (spaces are listed dynamically)
- confluence://pages/{id}: a page with its storage-format body

Available tools:
- search_content: Search Confluence content using CQL
- get_page: Retrieve a page by its numeric ID

Configure via environment variables:
- CONFLUENCE_URL: Instance root (e.g., https://example.atlassian.net)
- CONFLUENCE_EMAIL: API token owner email
- CONFLUENCE_API_TOKEN: Atlassian API token`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := confluence.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing (no-op unless enabled via OTEL_* variables)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Create Confluence client
	client := confluence.NewClient(config, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		HasResources: true,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Register the resource catalog
	catalog := resources.NewCatalog(client, logger)
	catalog.Register(server)

	// Run server on stdio transport
	logger.Info("Starting Confluence MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"confluence_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
