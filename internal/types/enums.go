package types

type VersionScheme string

const (
	VersionSchemeNuGet  VersionScheme = "nuget"
	VersionSchemeDebian VersionScheme = "deb"
)

// PackageStatus is the outcome of comparing an installed version against
// the registry's latest stable release.
type PackageStatus string

const (
	StatusUpToDate           PackageStatus = "up-to-date"
	StatusUpdateAvailable    PackageStatus = "update-available"
	StatusInstalledNewer     PackageStatus = "installed-newer"
	StatusNotFoundInRegistry PackageStatus = "not-in-registry"
	StatusErrorChecking      PackageStatus = "error-checking"
)

// UpgradeResult is the terminal state of one upgrade attempt, including
// the publisher-check retry tier.
type UpgradeResult string

const (
	UpgradeSuccess              UpgradeResult = "success"
	UpgradeFailedPublisherCheck UpgradeResult = "failed-publisher-check"
	UpgradeFailedOther          UpgradeResult = "failed"
	UpgradeRetrySuccess         UpgradeResult = "retry-success"
	UpgradeRetryFailed          UpgradeResult = "retry-failed"
	UpgradeNotRetried           UpgradeResult = "not-retried"
)
