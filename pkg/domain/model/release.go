package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relq/pkg/domain/types"
)

// Release represents one published release fetched from GitHub. It is
// immutable once fetched; derived values (version, package key) are
// recomputed per access and never stored back.
type Release struct {
	ID          int64     `json:"id"`
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body,omitempty"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url,omitempty"`
}

// Version returns the normalized semantic version of the release, derived
// from its tag. Returns nil if the tag does not resolve to a version.
func (r *Release) Version() *Version {
	return NormalizeVersion(r.TagName)
}

// PackageKey returns the logical package bucket this release belongs to.
// The tag takes precedence over the display name when both carry a
// package-style prefix.
func (r *Release) PackageKey() PackageKey {
	return ScopePackage(r.TagName, r.Name)
}

// RepoID identifies a GitHub repository by owner and name.
type RepoID struct {
	Owner string
	Name  string
}

// ParseRepoID parses an "owner/name" string into a RepoID.
func ParseRepoID(s string) (RepoID, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoID{}, goerr.New("repository must be in owner/name form",
			goerr.V("repository", s),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
	return RepoID{Owner: owner, Name: name}, nil
}

// String returns the repository in owner/name form.
func (r RepoID) String() string {
	return r.Owner + "/" + r.Name
}
