package core

import (
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"psup/internal/types"
)

// VersionComparer compares dotted version strings under one scheme,
// memoizing parsed values across repeated comparisons. Comparison is
// numeric per component, never lexicographic, and missing trailing
// components are treated as zero (1.2 == 1.2.0).
type VersionComparer struct {
	scheme types.VersionScheme
	deb    map[string]debversion.Version
	nuget  map[string]pep440.Version
}

// NewVersionComparer creates an empty comparer for the given scheme.
func NewVersionComparer(scheme types.VersionScheme) *VersionComparer {
	return &VersionComparer{
		scheme: scheme,
		deb:    map[string]debversion.Version{},
		nuget:  map[string]pep440.Version{},
	}
}

// debVersion returns a parsed Debian version, caching the result.
func (c *VersionComparer) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// nugetVersion returns a parsed gallery version, caching the result.
// Gallery versions are plain dotted numerics, which parse under the same
// grammar as PEP 440 release segments.
func (c *VersionComparer) nugetVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.nuget[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.nuget[value] = parsed
	return parsed, nil
}

// Compare returns -1, 0, or 1 comparing two version strings using the
// comparer's scheme semantics. Returns an error when either side does
// not parse under the scheme.
func (c *VersionComparer) Compare(a string, b string) (int, error) {
	switch c.scheme {
	case types.VersionSchemeDebian:
		v1, err := c.debVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := c.debVersion(b)
		if err != nil {
			return 0, err
		}
		return v1.Compare(v2), nil
	default:
		v1, err := c.nugetVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := c.nugetVersion(b)
		if err != nil {
			return 0, err
		}
		return v1.Compare(v2), nil
	}
}

// IsValid reports whether a version string parses under the scheme.
func (c *VersionComparer) IsValid(value string) bool {
	switch c.scheme {
	case types.VersionSchemeDebian:
		_, err := c.debVersion(value)
		return err == nil
	default:
		_, err := c.nugetVersion(value)
		return err == nil
	}
}
