package ports

import "psup/internal/types"

// ConfirmPort asks the operator a yes/no question. Anything other than an
// explicit affirmative answer declines.
type ConfirmPort interface {
	Confirm(message string) bool
}

// ReporterPort renders progress and results for the operator. Write-only;
// nothing returned here feeds back into the workflow.
type ReporterPort interface {
	Progress(current int, total int, name string)
	Records(records []types.PackageRecord)
	Outcomes(outcomes []types.UpgradeOutcome)
	Message(format string, args ...any)
}
