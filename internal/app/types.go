package app

import "psup/internal/types"

type CheckRequest struct {
	Source       string
	Scheme       types.VersionScheme
	PinsPath     string
	TimeoutSec   int
	Retries      int
	RetryDelayMs int
}

type CheckResult struct {
	Records    []types.PackageRecord
	Candidates []types.PackageRecord
	Pinned     []types.PackageRecord
}

type UpgradeRequest struct {
	CheckRequest
}

type UpgradeResult struct {
	Check         CheckResult
	Declined      bool
	RetryDeclined bool
	Outcomes      []types.UpgradeOutcome
}
