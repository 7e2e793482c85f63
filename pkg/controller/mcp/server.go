package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/m-mizutani/relq/pkg/domain/interfaces"
	"github.com/m-mizutani/relq/pkg/domain/types"
)

// Controller exposes the release queries as MCP tools. It holds no state
// beyond its use case dependencies; every tool call runs an independent
// query against a fresh release collection.
type Controller struct {
	releaseUC interfaces.ReleaseQueryUseCase
	packageUC interfaces.PackageQueryUseCase
}

// New creates a new MCP controller.
func New(releaseUC interfaces.ReleaseQueryUseCase, packageUC interfaces.PackageQueryUseCase) *Controller {
	return &Controller{
		releaseUC: releaseUC,
		packageUC: packageUC,
	}
}

// Server builds the MCP server with all tools registered.
func (x *Controller) Server() *server.MCPServer {
	s := server.NewMCPServer(
		types.AppName,
		types.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Read-only queries over GitHub releases: "+
			"exact version lookup, version range comparison, release listing, "+
			"and organization package discovery."),
	)

	for _, def := range x.tools() {
		s.AddTool(def.Tool, def.Handler)
	}

	return s
}
