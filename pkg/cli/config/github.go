package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/relq/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/relq/pkg/infra/github"
)

// GitHub holds GitHub API client configuration. Either a personal access
// token or GitHub App credentials may be provided; with neither, requests
// are unauthenticated.
type GitHub struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKey     string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("RELQ_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("RELQ_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("RELQ_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("RELQ_GITHUB_PRIVATE_KEY"),
		},
	}
}

// Configure builds the GitHub client from the configured credentials.
func (c *GitHub) Configure() (interfaces.GitHubClient, error) {
	if c.AppID != 0 {
		if c.InstallationID == 0 || c.PrivateKey == "" {
			return nil, goerr.New("GitHub App auth requires installation ID and private key")
		}
		return githubinfra.NewAppClient(c.AppID, c.InstallationID, []byte(c.PrivateKey))
	}

	return githubinfra.NewClient(c.Token), nil
}
