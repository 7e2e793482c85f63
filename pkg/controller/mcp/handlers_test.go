package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/m-mizutani/relq/pkg/domain/model"
)

// MockReleaseQuery is a mock implementation of ReleaseQueryUseCase
type MockReleaseQuery struct {
	getReleaseFunc      func(ctx context.Context, repo model.RepoID, version, pkg string) (*model.Release, error)
	compareReleasesFunc func(ctx context.Context, repo model.RepoID, from, to, pkg string) ([]*model.Release, error)
	listReleasesFunc    func(ctx context.Context, repo model.RepoID, pkg string, includePrereleases bool, limit int) ([]*model.Release, error)
}

func (m *MockReleaseQuery) GetRelease(ctx context.Context, repo model.RepoID, version, pkg string) (*model.Release, error) {
	return m.getReleaseFunc(ctx, repo, version, pkg)
}

func (m *MockReleaseQuery) CompareReleases(ctx context.Context, repo model.RepoID, from, to, pkg string) ([]*model.Release, error) {
	return m.compareReleasesFunc(ctx, repo, from, to, pkg)
}

func (m *MockReleaseQuery) ListReleases(ctx context.Context, repo model.RepoID, pkg string, includePrereleases bool, limit int) ([]*model.Release, error) {
	return m.listReleasesFunc(ctx, repo, pkg, includePrereleases, limit)
}

// MockPackageQuery is a mock implementation of PackageQueryUseCase
type MockPackageQuery struct {
	listPackagesFunc func(ctx context.Context, org, packageType string) ([]*model.Package, error)
}

func (m *MockPackageQuery) ListPackages(ctx context.Context, org, packageType string) ([]*model.Package, error) {
	return m.listPackagesFunc(ctx, org, packageType)
}

func callRequest(args map[string]any) mcplib.CallToolRequest {
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	gt.Number(t, len(res.Content)).Greater(0)
	text, ok := res.Content[0].(mcplib.TextContent)
	gt.Value(t, ok).Equal(true)
	return text.Text
}

func TestHandleGetRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("found release is returned as JSON", func(t *testing.T) {
		ctrl := New(&MockReleaseQuery{
			getReleaseFunc: func(ctx context.Context, repo model.RepoID, version, pkg string) (*model.Release, error) {
				gt.Value(t, repo.String()).Equal("withastro/astro")
				gt.Value(t, version).Equal("1.2.3")
				return &model.Release{ID: 42, TagName: "v1.2.3"}, nil
			},
		}, nil)

		res, err := ctrl.handleGetRelease(ctx, callRequest(map[string]any{
			"repository": "withastro/astro",
			"version":    "1.2.3",
		}))
		gt.NoError(t, err)
		gt.Value(t, res.IsError).Equal(false)

		var got getReleaseResult
		gt.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		gt.Value(t, got.Found).Equal(true)
		gt.Value(t, got.Release.TagName).Equal("v1.2.3")
	})

	t.Run("not found is a non-error result", func(t *testing.T) {
		ctrl := New(&MockReleaseQuery{
			getReleaseFunc: func(ctx context.Context, repo model.RepoID, version, pkg string) (*model.Release, error) {
				return nil, nil
			},
		}, nil)

		res, err := ctrl.handleGetRelease(ctx, callRequest(map[string]any{
			"repository": "withastro/astro",
			"version":    "9.9.9",
		}))
		gt.NoError(t, err)
		gt.Value(t, res.IsError).Equal(false)

		var got getReleaseResult
		gt.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		gt.Value(t, got.Found).Equal(false)
		gt.Value(t, got.Release).Nil()
	})

	t.Run("use case error becomes tool error", func(t *testing.T) {
		ctrl := New(&MockReleaseQuery{
			getReleaseFunc: func(ctx context.Context, repo model.RepoID, version, pkg string) (*model.Release, error) {
				return nil, goerr.New("invalid version")
			},
		}, nil)

		res, err := ctrl.handleGetRelease(ctx, callRequest(map[string]any{
			"repository": "withastro/astro",
			"version":    "bogus",
		}))
		gt.NoError(t, err)
		gt.Value(t, res.IsError).Equal(true)
	})

	t.Run("malformed repository is rejected before the use case", func(t *testing.T) {
		ctrl := New(&MockReleaseQuery{
			getReleaseFunc: func(ctx context.Context, repo model.RepoID, version, pkg string) (*model.Release, error) {
				t.Fatal("use case must not be called")
				return nil, nil
			},
		}, nil)

		res, err := ctrl.handleGetRelease(ctx, callRequest(map[string]any{
			"repository": "not-a-repo",
			"version":    "1.0.0",
		}))
		gt.NoError(t, err)
		gt.Value(t, res.IsError).Equal(true)
	})
}

func TestHandleListReleases(t *testing.T) {
	ctx := context.Background()

	ctrl := New(&MockReleaseQuery{
		listReleasesFunc: func(ctx context.Context, repo model.RepoID, pkg string, includePrereleases bool, limit int) ([]*model.Release, error) {
			gt.Value(t, pkg).Equal("@astrojs/vue")
			gt.Value(t, includePrereleases).Equal(true)
			gt.Number(t, limit).Equal(5)
			return []*model.Release{
				{ID: 1, TagName: "@astrojs/vue@2.0.0"},
			}, nil
		},
	}, nil)

	res, err := ctrl.handleListReleases(ctx, callRequest(map[string]any{
		"repository":          "withastro/astro",
		"package":             "@astrojs/vue",
		"include_prereleases": true,
		"limit":               5,
	}))
	gt.NoError(t, err)
	gt.Value(t, res.IsError).Equal(false)

	var got releaseListResult
	gt.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	gt.Number(t, got.Count).Equal(1)
	gt.Value(t, got.Releases[0].TagName).Equal("@astrojs/vue@2.0.0")
}

func TestHandleListPackages(t *testing.T) {
	ctx := context.Background()

	ctrl := New(nil, &MockPackageQuery{
		listPackagesFunc: func(ctx context.Context, org, packageType string) ([]*model.Package, error) {
			gt.Value(t, org).Equal("withastro")
			gt.Value(t, packageType).Equal("npm")
			return []*model.Package{{ID: 1, Name: "astro", PackageType: "npm"}}, nil
		},
	})

	res, err := ctrl.handleListPackages(ctx, callRequest(map[string]any{
		"organization": "withastro",
		"package_type": "npm",
	}))
	gt.NoError(t, err)
	gt.Value(t, res.IsError).Equal(false)

	var got packageListResult
	gt.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	gt.Number(t, got.Count).Equal(1)
	gt.Value(t, got.Packages[0].Name).Equal("astro")
}

func TestServerRegistersTools(t *testing.T) {
	ctrl := New(&MockReleaseQuery{}, &MockPackageQuery{})
	s := ctrl.Server()
	gt.Value(t, s).NotNil()

	names := make(map[string]bool)
	for _, def := range ctrl.tools() {
		names[def.Tool.Name] = true
	}
	for _, want := range []string{"get_release", "compare_releases", "list_releases", "list_packages"} {
		gt.Value(t, names[want]).Equal(true)
	}
}
