package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures for the transport layer. A query that matches
// nothing is not an error and carries no tag; it is represented by a nil or
// empty result.
var (
	// ErrTagInvalidArgument marks errors caused by caller input, such as a
	// version string that does not normalize to a semantic version.
	ErrTagInvalidArgument = goerr.NewTag("invalid_argument")

	// ErrTagExternal marks failures of the upstream GitHub API, including
	// any page fetch failure during release collection.
	ErrTagExternal = goerr.NewTag("external")
)
