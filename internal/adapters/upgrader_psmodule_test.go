package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psup/internal/types"
)

func recordingRunner(script *string, stdout string, stderr string, err error) CommandRunner {
	return func(_ context.Context, _ string, args []string) ([]byte, []byte, error) {
		if len(args) > 0 {
			*script = args[len(args)-1]
		}
		return []byte(stdout), []byte(stderr), err
	}
}

func TestUpgraderSuccess(t *testing.T) {
	var script string
	adapter := NewPSModuleUpgraderAdapter()
	adapter.Run = recordingRunner(&script, "", "", nil)

	err := adapter.Upgrade(t.Context(), "Pester", types.UpgradeOptions{Force: true})
	require.NoError(t, err)
	assert.Contains(t, script, "Install-Module -Name 'Pester'")
	assert.Contains(t, script, "-Force")
	assert.NotContains(t, script, "-SkipPublisherCheck")
}

func TestUpgraderSkipVerificationFlag(t *testing.T) {
	var script string
	adapter := NewPSModuleUpgraderAdapter()
	adapter.Run = recordingRunner(&script, "", "", nil)

	err := adapter.Upgrade(t.Context(), "Pester", types.UpgradeOptions{Force: true, SkipVerification: true})
	require.NoError(t, err)
	assert.Contains(t, script, "-Force")
	assert.Contains(t, script, "-SkipPublisherCheck")
}

func TestUpgraderPublisherCheckFailure(t *testing.T) {
	var script string
	adapter := NewPSModuleUpgraderAdapter()
	stderr := "Install-Package: Authenticode issuer 'CN=New' of the new module 'Pester' is not matching. Use -SkipPublisherCheck."
	adapter.Run = recordingRunner(&script, "", stderr, errors.New("exit status 1"))

	err := adapter.Upgrade(t.Context(), "Pester", types.UpgradeOptions{Force: true})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodePermissionDenied, errbuilder.CodeOf(err))
}

func TestUpgraderOtherFailure(t *testing.T) {
	var script string
	adapter := NewPSModuleUpgraderAdapter()
	adapter.Run = recordingRunner(&script, "", "network timeout while contacting repository", errors.New("exit status 1"))

	err := adapter.Upgrade(t.Context(), "Pester", types.UpgradeOptions{Force: true})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestUpgraderRejectsInvalidNames(t *testing.T) {
	adapter := NewPSModuleUpgraderAdapter()
	adapter.Run = func(_ context.Context, _ string, _ []string) ([]byte, []byte, error) {
		t.Fatal("runner must not be called for invalid names")
		return nil, nil, nil
	}

	for _, name := range []string{"", "   ", "evil'; rm -rf /", "name with spaces", strings.Repeat("a", 300)} {
		err := adapter.Upgrade(t.Context(), name, types.UpgradeOptions{})
		require.Error(t, err, "name=%q", name)
		assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	}
}
