package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relq/pkg/domain/model"
	"github.com/m-mizutani/relq/pkg/domain/types"
)

// pageSize is the maximum page size the GitHub API accepts.
const pageSize = 100

// fetchAllReleases pages through the complete release collection of a
// repository. Pages are requested strictly in sequence because termination
// depends on the previous page's size: a short or empty page ends the loop.
// Any page failure aborts the whole fetch without partial results.
func (uc *releaseQuery) fetchAllReleases(ctx context.Context, repo model.RepoID) ([]*model.Release, error) {
	logger := ctxlog.From(ctx)

	var all []*model.Release
	for page := 1; ; page++ {
		releases, err := uc.githubClient.ListReleasesPage(ctx, repo, page, pageSize)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch release page",
				goerr.V("repository", repo.String()),
				goerr.V("page", page),
				goerr.T(types.ErrTagExternal),
			)
		}

		all = append(all, releases...)
		if len(releases) < pageSize {
			break
		}
	}

	logger.Debug("Fetched release collection",
		"repository", repo.String(),
		"count", len(all),
	)

	return all, nil
}
