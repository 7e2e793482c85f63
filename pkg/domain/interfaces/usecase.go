package interfaces

import (
	"context"

	"github.com/m-mizutani/relq/pkg/domain/model"
)

// ReleaseQueryUseCase defines the read-only release queries exposed to the
// transport layer. A query that matches nothing returns a nil or empty
// result without an error.
type ReleaseQueryUseCase interface {
	// GetRelease returns the release whose normalized version equals the
	// given version, or nil when none matches.
	GetRelease(ctx context.Context, repo model.RepoID, version string, pkg string) (*model.Release, error)

	// CompareReleases returns releases whose normalized versions lie within
	// [from, to] inclusive, sorted ascending by version.
	CompareReleases(ctx context.Context, repo model.RepoID, from, to string, pkg string) ([]*model.Release, error)

	// ListReleases returns releases in collection order, optionally scoped
	// to a package, excluding pre-releases unless requested, truncated to
	// limit when limit is positive.
	ListReleases(ctx context.Context, repo model.RepoID, pkg string, includePrereleases bool, limit int) ([]*model.Release, error)
}

// PackageQueryUseCase defines the organization package listing query.
type PackageQueryUseCase interface {
	// ListPackages returns all packages of the given type in the
	// organization's registry.
	ListPackages(ctx context.Context, org, packageType string) ([]*model.Package, error)
}
