package adapters

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"psup/internal/core"
	"psup/internal/shared"
	"psup/internal/types"
)

// validModuleName matches gallery module identifiers; names are passed
// inside a quoted PowerShell string, so reject anything else outright.
var validModuleName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]{0,255}$`)

// PSModuleUpgraderAdapter upgrades one module in place via Install-Module.
type PSModuleUpgraderAdapter struct {
	Shell string
	Scope string
	Run   CommandRunner
}

func NewPSModuleUpgraderAdapter() PSModuleUpgraderAdapter {
	return PSModuleUpgraderAdapter{Shell: "pwsh", Scope: "CurrentUser", Run: runCommand}
}

func (a PSModuleUpgraderAdapter) Upgrade(ctx context.Context, name string, opts types.UpgradeOptions) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("module name is empty")
	}
	if !validModuleName.MatchString(trimmed) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid module name: %q", trimmed))
	}
	var script strings.Builder
	fmt.Fprintf(&script, "Install-Module -Name '%s' -Scope %s -AllowClobber -ErrorAction Stop", trimmed, a.Scope)
	if opts.Force {
		script.WriteString(" -Force")
	}
	if opts.SkipVerification {
		script.WriteString(" -SkipPublisherCheck")
	}
	stdout, stderr, err := a.Run(ctx, a.Shell, []string{"-NoProfile", "-NonInteractive", "-Command", script.String()})
	if err == nil {
		return nil
	}
	combined := strings.TrimSpace(string(stdout) + "\n" + string(stderr))
	if core.MatchesPublisherCheck(combined) || core.MatchesPublisherCheck(err.Error()) {
		return errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg(fmt.Sprintf("publisher check failed for %s", trimmed)).
			WithCause(shared.CommandError([]byte(combined), err))
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("module upgrade failed for %s", trimmed)).
		WithCause(shared.CommandError([]byte(combined), err))
}
