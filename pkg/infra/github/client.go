package github

import (
	"context"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relq/pkg/domain/interfaces"
	"github.com/m-mizutani/relq/pkg/domain/model"
	"github.com/m-mizutani/relq/pkg/domain/types"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a GitHub client. With a non-empty token it
// authenticates as that PAT; otherwise requests are unauthenticated, which
// is sufficient for public repositories.
func NewClient(token string) interfaces.GitHubClient {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	return &client{githubClient: gh}
}

// NewAppClient creates a GitHub client with App installation authentication.
func NewAppClient(appID, installationID int64, privateKey []byte) (interfaces.GitHubClient, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport")
	}

	return &client{
		githubClient: github.NewClient(&http.Client{Transport: itr}),
	}, nil
}

// ListReleasesPage returns one page of releases in the API's natural order.
func (c *client) ListReleasesPage(ctx context.Context, repo model.RepoID, page, perPage int) ([]*model.Release, error) {
	releases, _, err := c.githubClient.Repositories.ListReleases(ctx, repo.Owner, repo.Name, &github.ListOptions{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list releases",
			goerr.V("repository", repo.String()),
			goerr.V("page", page),
			goerr.T(types.ErrTagExternal),
		)
	}

	converted := make([]*model.Release, 0, len(releases))
	for _, r := range releases {
		converted = append(converted, convertRelease(r))
	}
	return converted, nil
}

// ListPackagesPage returns one page of an organization's packages.
func (c *client) ListPackagesPage(ctx context.Context, org, packageType string, page, perPage int) ([]*model.Package, error) {
	packages, _, err := c.githubClient.Organizations.ListPackages(ctx, org, &github.PackageListOptions{
		PackageType: github.Ptr(packageType),
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list packages",
			goerr.V("org", org),
			goerr.V("package_type", packageType),
			goerr.V("page", page),
			goerr.T(types.ErrTagExternal),
		)
	}

	converted := make([]*model.Package, 0, len(packages))
	for _, p := range packages {
		converted = append(converted, convertPackage(p))
	}
	return converted, nil
}

func convertRelease(r *github.RepositoryRelease) *model.Release {
	return &model.Release{
		ID:          r.GetID(),
		TagName:     r.GetTagName(),
		Name:        r.GetName(),
		Body:        r.GetBody(),
		Prerelease:  r.GetPrerelease(),
		PublishedAt: r.GetPublishedAt().Time,
		HTMLURL:     r.GetHTMLURL(),
	}
}

func convertPackage(p *github.Package) *model.Package {
	return &model.Package{
		ID:          p.GetID(),
		Name:        p.GetName(),
		PackageType: p.GetPackageType(),
		Visibility:  p.GetVisibility(),
		HTMLURL:     p.GetHTMLURL(),
	}
}
