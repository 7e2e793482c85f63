package interfaces

import (
	"context"

	"github.com/m-mizutani/relq/pkg/domain/model"
)

// GitHubClient defines operations for interacting with the GitHub API.
// Both listings are cursor-style: callers request one bounded page at a
// time and decide termination from the returned page size.
type GitHubClient interface {
	// ListReleasesPage returns one page of releases for a repository in the
	// API's natural collection order. page is 1-origin.
	ListReleasesPage(ctx context.Context, repo model.RepoID, page, perPage int) ([]*model.Release, error)

	// ListPackagesPage returns one page of an organization's packages of
	// the given type. page is 1-origin.
	ListPackagesPage(ctx context.Context, org, packageType string, page, perPage int) ([]*model.Package, error)
}
