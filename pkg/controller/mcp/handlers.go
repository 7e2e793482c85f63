package mcp

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/ctxlog"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/m-mizutani/relq/pkg/domain/model"
)

// getReleaseResult is the payload of the get_release tool. Found is false
// when the query executed but no release matched; that is not an error.
type getReleaseResult struct {
	Found   bool           `json:"found"`
	Release *model.Release `json:"release,omitempty"`
}

type releaseListResult struct {
	Count    int              `json:"count"`
	Releases []*model.Release `json:"releases"`
}

type packageListResult struct {
	Count    int              `json:"count"`
	Packages []*model.Package `json:"packages"`
}

func (x *Controller) handleGetRelease(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, res := requireRepository(req)
	if res != nil {
		return res, nil
	}

	version, err := req.RequireString("version")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pkg := req.GetString("package", "")

	release, err := x.releaseUC.GetRelease(ctx, repo, version, pkg)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return toolJSON(ctx, getReleaseResult{
		Found:   release != nil,
		Release: release,
	})
}

func (x *Controller) handleCompareReleases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, res := requireRepository(req)
	if res != nil {
		return res, nil
	}

	from, err := req.RequireString("from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := req.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pkg := req.GetString("package", "")

	releases, err := x.releaseUC.CompareReleases(ctx, repo, from, to, pkg)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return toolJSON(ctx, releaseListResult{
		Count:    len(releases),
		Releases: releases,
	})
}

func (x *Controller) handleListReleases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, res := requireRepository(req)
	if res != nil {
		return res, nil
	}

	pkg := req.GetString("package", "")
	includePrereleases := req.GetBool("include_prereleases", false)
	limit := req.GetInt("limit", 0)

	releases, err := x.releaseUC.ListReleases(ctx, repo, pkg, includePrereleases, limit)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return toolJSON(ctx, releaseListResult{
		Count:    len(releases),
		Releases: releases,
	})
}

func (x *Controller) handleListPackages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := req.RequireString("organization")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	packageType := req.GetString("package_type", "container")

	packages, err := x.packageUC.ListPackages(ctx, org, packageType)
	if err != nil {
		return toolError(ctx, err), nil
	}

	return toolJSON(ctx, packageListResult{
		Count:    len(packages),
		Packages: packages,
	})
}

func requireRepository(req mcp.CallToolRequest) (model.RepoID, *mcp.CallToolResult) {
	raw, err := req.RequireString("repository")
	if err != nil {
		return model.RepoID{}, mcp.NewToolResultError(err.Error())
	}

	repo, err := model.ParseRepoID(raw)
	if err != nil {
		return model.RepoID{}, mcp.NewToolResultError(err.Error())
	}
	return repo, nil
}

func toolJSON(ctx context.Context, v any) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to marshal tool result", "error", err)
		return mcp.NewToolResultError("failed to encode result"), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

func toolError(ctx context.Context, err error) *mcp.CallToolResult {
	ctxlog.From(ctx).Error("Tool execution failed", "error", err)
	return mcp.NewToolResultError(err.Error())
}
