package types

// InstalledPackage is one row of the local inventory.
type InstalledPackage struct {
	Name    string
	Version string
	Path    string
}

// PackageRecord is the resolved view of one installed package. LatestVersion
// is empty when the registry lookup did not produce a version (not found or
// lookup error). Records are built once during resolution and not mutated
// afterwards.
type PackageRecord struct {
	Name             string        `json:"name"`
	InstalledVersion string        `json:"installed_version"`
	LatestVersion    string        `json:"latest_version,omitempty"`
	Status           PackageStatus `json:"status"`
	InstalledPath    string        `json:"installed_path,omitempty"`
}

// UpgradeOptions selects the upgrade invocation mode. Force suppresses
// interactive prompts and replaces in-use modules; SkipVerification bypasses
// the publisher/trust check.
type UpgradeOptions struct {
	Force            bool
	SkipVerification bool
}

// UpgradeOutcome is the per-package result of the upgrade workflow.
type UpgradeOutcome struct {
	Record PackageRecord
	Result UpgradeResult
	Detail string
}
