package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolDefinition pairs an MCP tool schema with its handler.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

func (x *Controller) tools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool("get_release",
				mcp.WithDescription("Get a single GitHub release by exact version. Version matching uses semantic version equality, so 'v1.2.3', '1.2.3' and monorepo tags like 'pkg@1.2.3' all refer to the same release."),
				mcp.WithString("repository",
					mcp.Required(),
					mcp.Description("Repository in owner/name form (e.g. 'withastro/astro')"),
				),
				mcp.WithString("version",
					mcp.Required(),
					mcp.Description("Target version (e.g. '1.2.3' or 'v1.2.3')"),
				),
				mcp.WithString("package",
					mcp.Description("Package key to scope the lookup in a monorepo (e.g. '@astrojs/vue')"),
				),
			),
			Handler: x.handleGetRelease,
		},
		{
			Tool: mcp.NewTool("compare_releases",
				mcp.WithDescription("List GitHub releases between two versions, inclusive at both ends, sorted ascending by version."),
				mcp.WithString("repository",
					mcp.Required(),
					mcp.Description("Repository in owner/name form"),
				),
				mcp.WithString("from",
					mcp.Required(),
					mcp.Description("Lower bound version, inclusive"),
				),
				mcp.WithString("to",
					mcp.Required(),
					mcp.Description("Upper bound version, inclusive"),
				),
				mcp.WithString("package",
					mcp.Description("Package key to scope the comparison in a monorepo"),
				),
			),
			Handler: x.handleCompareReleases,
		},
		{
			Tool: mcp.NewTool("list_releases",
				mcp.WithDescription("List GitHub releases of a repository in the API's collection order (newest first)."),
				mcp.WithString("repository",
					mcp.Required(),
					mcp.Description("Repository in owner/name form"),
				),
				mcp.WithString("package",
					mcp.Description("Package key to scope the listing in a monorepo"),
				),
				mcp.WithBoolean("include_prereleases",
					mcp.Description("Include releases flagged as pre-release (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of releases to return; 0 or below means no limit"),
					mcp.DefaultNumber(0),
				),
			),
			Handler: x.handleListReleases,
		},
		{
			Tool: mcp.NewTool("list_packages",
				mcp.WithDescription("List packages published in a GitHub organization's package registry."),
				mcp.WithString("organization",
					mcp.Required(),
					mcp.Description("GitHub organization login"),
				),
				mcp.WithString("package_type",
					mcp.Description("Package type: container, npm, maven, rubygems, nuget or docker (default: container)"),
					mcp.DefaultString("container"),
				),
			),
			Handler: x.handleListPackages,
		},
	}
}
