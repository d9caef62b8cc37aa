package core

import "psup/internal/types"

// LookupOutcome is the shape of a registry lookup result as seen by the
// classifier: a version was found, the registry has no entry for the
// name, or the lookup itself failed.
type LookupOutcome int

const (
	LookupFound LookupOutcome = iota
	LookupNotFound
	LookupError
)

// Classify computes the status of one installed package from its installed
// version, the registry's latest stable version, and the lookup outcome.
// It is a pure function: no side effects, total over all inputs. Versions
// that do not parse under the comparer's scheme classify as error-checking
// rather than guessing an ordering.
func Classify(cmp *VersionComparer, installed string, latest string, outcome LookupOutcome) types.PackageStatus {
	switch outcome {
	case LookupError:
		return types.StatusErrorChecking
	case LookupNotFound:
		return types.StatusNotFoundInRegistry
	}
	result, err := cmp.Compare(installed, latest)
	if err != nil {
		return types.StatusErrorChecking
	}
	switch {
	case result < 0:
		return types.StatusUpdateAvailable
	case result > 0:
		return types.StatusInstalledNewer
	default:
		return types.StatusUpToDate
	}
}
