package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/relq/pkg/cli/config"
	controller "github.com/m-mizutani/relq/pkg/controller/http"
	mcpctrl "github.com/m-mizutani/relq/pkg/controller/mcp"
	"github.com/m-mizutani/relq/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start MCP server over streamable HTTP",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting relq server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("github", githubCfg),
			)

			githubClient, err := githubCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure GitHub client")
			}

			ctrl := mcpctrl.New(
				usecase.NewReleaseQuery(githubClient),
				usecase.NewPackageQuery(githubClient),
			)

			mcpHandler := server.NewStreamableHTTPServer(ctrl.Server(),
				server.WithHTTPContextFunc(func(reqCtx context.Context, r *http.Request) context.Context {
					return ctxlog.With(reqCtx, logger)
				}),
			)

			// Create HTTP server with options
			httpServer, err := controller.NewServer(
				ctx,
				mcpHandler,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
