package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relq/pkg/domain/interfaces"
	"github.com/m-mizutani/relq/pkg/domain/model"
	"github.com/m-mizutani/relq/pkg/domain/types"
)

type packageQuery struct {
	githubClient interfaces.GitHubClient
}

// NewPackageQuery creates a new instance of PackageQueryUseCase.
func NewPackageQuery(githubClient interfaces.GitHubClient) interfaces.PackageQueryUseCase {
	return &packageQuery{
		githubClient: githubClient,
	}
}

// ListPackages pages through the organization's package registry. Same
// sequential pagination contract as the release fetch: short or empty page
// ends the loop, any page failure aborts the whole listing.
func (uc *packageQuery) ListPackages(ctx context.Context, org, packageType string) ([]*model.Package, error) {
	if org == "" {
		return nil, goerr.New("organization is required",
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	var all []*model.Package
	for page := 1; ; page++ {
		packages, err := uc.githubClient.ListPackagesPage(ctx, org, packageType, page, pageSize)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch package page",
				goerr.V("org", org),
				goerr.V("page", page),
				goerr.T(types.ErrTagExternal),
			)
		}

		all = append(all, packages...)
		if len(packages) < pageSize {
			break
		}
	}

	ctxlog.From(ctx).Debug("Fetched package collection",
		"org", org,
		"package_type", packageType,
		"count", len(all),
	)

	return all, nil
}
