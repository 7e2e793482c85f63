package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/relq/pkg/cli/config"
	mcpctrl "github.com/m-mizutani/relq/pkg/controller/mcp"
	"github.com/m-mizutani/relq/pkg/usecase"
)

func cmdMCP() *cli.Command {
	var githubCfg config.GitHub

	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP server on stdio",
		Flags: githubCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			githubClient, err := githubCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure GitHub client")
			}

			ctrl := mcpctrl.New(
				usecase.NewReleaseQuery(githubClient),
				usecase.NewPackageQuery(githubClient),
			)

			logger.Info("Starting MCP server on stdio",
				slog.Any("github", githubCfg),
			)

			// Tool handlers receive a per-request context from the stdio
			// server; re-attach the logger there.
			if err := server.ServeStdio(ctrl.Server(),
				server.WithStdioContextFunc(func(reqCtx context.Context) context.Context {
					return ctxlog.With(reqCtx, logger)
				}),
			); err != nil && err != context.Canceled {
				return goerr.Wrap(err, "stdio server failed")
			}

			logger.Info("MCP server stopped")
			return nil
		},
	}
}
