package model

import "regexp"

// PackageKey identifies the logical package a release belongs to within a
// multi-package repository.
type PackageKey string

// DefaultPackageKey is the repository-wide bucket used when a release
// carries no package-style prefix in its tag or name.
const DefaultPackageKey PackageKey = "default"

// packagePrefixRe matches a package prefix anchored at the start of a tag or
// name: "@scope/name@..." or "name@...". The name portion must not contain
// an "@", so multi-@ strings resolve to the first anchored prefix only.
var packagePrefixRe = regexp.MustCompile(`^(@[^@/\s]+/[^@\s]+|[^@\s]+)@`)

// ScopePackage derives the PackageKey of a release from its tag and display
// name. The tag takes precedence; the name is only consulted when the tag
// has no package prefix. Without either, the default bucket is returned.
//
// Note: tag-first precedence mirrors the upstream behavior but has not been
// validated against monorepo conventions where tag and name disagree.
func ScopePackage(tag, name string) PackageKey {
	if key, ok := extractPackagePrefix(tag); ok {
		return key
	}
	if key, ok := extractPackagePrefix(name); ok {
		return key
	}
	return DefaultPackageKey
}

func extractPackagePrefix(s string) (PackageKey, bool) {
	m := packagePrefixRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return PackageKey(m[1]), true
}

// Package represents one package entry from an organization's package
// registry listing.
type Package struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PackageType string `json:"package_type"`
	Visibility  string `json:"visibility,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
}
