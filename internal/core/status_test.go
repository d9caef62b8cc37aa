package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"psup/internal/types"
)

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassifyEqualVersions(t *testing.T) {
	cmp := NewVersionComparer(types.VersionSchemeNuGet)

	pairs := [][2]string{
		{"1.0.0", "1.0.0"},
		{"1.2", "1.2.0"},
		{"1.2.0", "1.2"},
		{"0.0.1", "0.0.1"},
	}
	for _, pair := range pairs {
		assert.Equal(t, types.StatusUpToDate, Classify(cmp, pair[0], pair[1], LookupFound),
			"installed=%s latest=%s", pair[0], pair[1])
	}
}

func TestClassifyUpdateAvailable(t *testing.T) {
	cmp := NewVersionComparer(types.VersionSchemeNuGet)

	pairs := [][2]string{
		{"1.0.0", "1.1.0"},
		{"1.2.0", "1.10.0"},
		{"1.9.9", "2.0.0"},
		{"0.9", "1.0"},
	}
	for _, pair := range pairs {
		assert.Equal(t, types.StatusUpdateAvailable, Classify(cmp, pair[0], pair[1], LookupFound),
			"installed=%s latest=%s", pair[0], pair[1])
	}
}

func TestClassifyInstalledNewer(t *testing.T) {
	cmp := NewVersionComparer(types.VersionSchemeNuGet)

	assert.Equal(t, types.StatusInstalledNewer, Classify(cmp, "2.0.0", "1.9.0", LookupFound))
	assert.Equal(t, types.StatusInstalledNewer, Classify(cmp, "1.10.0", "1.2.0", LookupFound))
}

func TestClassifyNotFoundWinsOverVersions(t *testing.T) {
	cmp := NewVersionComparer(types.VersionSchemeNuGet)

	// Not-found applies regardless of the installed version.
	assert.Equal(t, types.StatusNotFoundInRegistry, Classify(cmp, "1.0.0", "", LookupNotFound))
	assert.Equal(t, types.StatusNotFoundInRegistry, Classify(cmp, "garbage", "", LookupNotFound))
}

func TestClassifyLookupError(t *testing.T) {
	cmp := NewVersionComparer(types.VersionSchemeNuGet)

	assert.Equal(t, types.StatusErrorChecking, Classify(cmp, "1.0.0", "", LookupError))
}

func TestClassifyMalformedVersion(t *testing.T) {
	cmp := NewVersionComparer(types.VersionSchemeNuGet)

	assert.Equal(t, types.StatusErrorChecking, Classify(cmp, "not-a-version!!!", "1.0.0", LookupFound))
	assert.Equal(t, types.StatusErrorChecking, Classify(cmp, "1.0.0", "not-a-version!!!", LookupFound))
}
