package model

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the canonical comparable form of a release version. Ordering
// and equality follow semantic version precedence: major, minor, patch,
// then pre-release tags (which sort before the corresponding release).
// Build metadata does not participate in precedence.
type Version = semver.Version

// versionStrategy extracts a version candidate from a raw tag or name
// string. Strategies are tried in the declared order and the first one that
// claims the input determines the candidate; the candidate is then cleaned
// strictly. A candidate that fails strict cleaning makes the whole input
// unresolvable.
type versionStrategy struct {
	name    string
	extract func(raw string) (string, bool)
}

var (
	// Monorepo package-tag convention: "@astrojs/vue@2.0.0", "pkg@1.2.3".
	trailingVersionRe = regexp.MustCompile(`@(v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?)$`)
	// Plain tag convention: "v1.2.3", "1.2.3-beta.1", possibly with a suffix.
	leadingVersionRe = regexp.MustCompile(`^v?(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?)`)
)

var versionStrategies = []versionStrategy{
	{
		name: "trailing package tag",
		extract: func(raw string) (string, bool) {
			m := trailingVersionRe.FindStringSubmatch(raw)
			if m == nil {
				return "", false
			}
			return m[1], true
		},
	},
	{
		name: "leading triple",
		extract: func(raw string) (string, bool) {
			m := leadingVersionRe.FindStringSubmatch(raw)
			if m == nil {
				return "", false
			}
			return m[1], true
		},
	},
	{
		name: "whole string",
		extract: func(raw string) (string, bool) {
			return raw, true
		},
	},
}

// NormalizeVersion turns a raw tag/version string into a canonical Version,
// or nil when the string does not resolve to one. It never fails hard:
// unresolvable input is expected for non-version tags.
func NormalizeVersion(raw string) *Version {
	for _, s := range versionStrategies {
		candidate, ok := s.extract(raw)
		if !ok {
			continue
		}
		return cleanVersion(candidate)
	}
	return nil
}

// cleanVersion applies strict semantic-version parsing after whitespace and
// "v" prefix normalization. Anything not conforming yields nil.
func cleanVersion(s string) *Version {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "v")

	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil
	}
	return v
}
