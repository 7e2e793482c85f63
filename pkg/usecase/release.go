package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relq/pkg/domain/interfaces"
	"github.com/m-mizutani/relq/pkg/domain/model"
	"github.com/m-mizutani/relq/pkg/domain/types"
)

type releaseQuery struct {
	githubClient interfaces.GitHubClient
}

// NewReleaseQuery creates a new instance of ReleaseQueryUseCase. Each query
// fetches its own release collection; nothing is cached or shared across
// invocations.
func NewReleaseQuery(githubClient interfaces.GitHubClient) interfaces.ReleaseQueryUseCase {
	return &releaseQuery{
		githubClient: githubClient,
	}
}

// GetRelease returns the first release in collection order whose normalized
// version equals the target, or nil when none matches. Releases whose tags
// do not normalize are skipped, never reported.
func (uc *releaseQuery) GetRelease(ctx context.Context, repo model.RepoID, version string, pkg string) (*model.Release, error) {
	target := model.NormalizeVersion(version)
	if target == nil {
		return nil, goerr.New("invalid version",
			goerr.V("version", version),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	releases, err := uc.fetchAllReleases(ctx, repo)
	if err != nil {
		return nil, err
	}

	for _, r := range releases {
		if pkg != "" && r.PackageKey() != model.PackageKey(pkg) {
			continue
		}
		v := r.Version()
		if v == nil {
			continue
		}
		if v.Equal(target) {
			return r, nil
		}
	}

	ctxlog.From(ctx).Debug("No release matched version",
		"repository", repo.String(),
		"version", target.String(),
	)
	return nil, nil
}

// CompareReleases returns releases whose normalized versions fall within
// [from, to] inclusive, sorted ascending by version. The sort is stable:
// releases with equal versions keep their collection order.
func (uc *releaseQuery) CompareReleases(ctx context.Context, repo model.RepoID, from, to string, pkg string) ([]*model.Release, error) {
	fromVer := model.NormalizeVersion(from)
	if fromVer == nil {
		return nil, goerr.New("invalid 'from' version",
			goerr.V("from", from),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
	toVer := model.NormalizeVersion(to)
	if toVer == nil {
		return nil, goerr.New("invalid 'to' version",
			goerr.V("to", to),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	releases, err := uc.fetchAllReleases(ctx, repo)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Release, 0, len(releases))
	for _, r := range releases {
		if pkg != "" && r.PackageKey() != model.PackageKey(pkg) {
			continue
		}
		v := r.Version()
		if v == nil {
			continue
		}
		if v.Compare(fromVer) < 0 || v.Compare(toVer) > 0 {
			continue
		}
		matched = append(matched, r)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Version().LessThan(matched[j].Version())
	})

	return matched, nil
}

// ListReleases returns releases in collection order. Pre-releases are
// dropped unless includePrereleases is set. A limit of zero or below means
// no limit.
func (uc *releaseQuery) ListReleases(ctx context.Context, repo model.RepoID, pkg string, includePrereleases bool, limit int) ([]*model.Release, error) {
	releases, err := uc.fetchAllReleases(ctx, repo)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Release, 0, len(releases))
	for _, r := range releases {
		if pkg != "" && r.PackageKey() != model.PackageKey(pkg) {
			continue
		}
		if r.Prerelease && !includePrereleases {
			continue
		}
		matched = append(matched, r)
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}
