package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"psup/internal/core"
	"psup/internal/policies"
	"psup/internal/types"
)

// Check runs the inventory and resolution stages: list installed modules,
// look up the latest stable release for each, and classify. A lookup
// failure degrades that module's record to error-checking and the loop
// continues; only an inventory failure ends the run.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	scheme, err := normalizeScheme(req.Scheme)
	if err != nil {
		return CheckResult{}, err
	}
	pins, err := s.Pins.LoadPins(req.PinsPath)
	if err != nil {
		return CheckResult{}, err
	}
	policy := policies.NewPinPolicy(pins)

	installed, err := s.Inventory.ListInstalled(ctx)
	if err != nil {
		return CheckResult{}, err
	}
	if len(installed) == 0 {
		return CheckResult{}, nil
	}

	registry := s.registry(req)
	comparer := core.NewVersionComparer(scheme)
	result := CheckResult{Records: make([]types.PackageRecord, 0, len(installed))}
	for index, pkg := range installed {
		s.Reporter.Progress(index+1, len(installed), pkg.Name)
		latest, lookupErr := registry.FindLatestStable(ctx, pkg.Name)
		outcome := core.LookupFound
		if lookupErr != nil {
			latest = ""
			if errbuilder.CodeOf(lookupErr) == errbuilder.CodeNotFound {
				outcome = core.LookupNotFound
			} else {
				outcome = core.LookupError
				log.Warn().Err(lookupErr).Str("module", pkg.Name).Msg("registry lookup failed")
			}
		}
		record := types.PackageRecord{
			Name:             pkg.Name,
			InstalledVersion: pkg.Version,
			LatestVersion:    latest,
			Status:           core.Classify(comparer, pkg.Version, latest, outcome),
			InstalledPath:    pkg.Path,
		}
		result.Records = append(result.Records, record)
		if record.Status != types.StatusUpdateAvailable {
			continue
		}
		if policy.Pinned(record.Name) {
			result.Pinned = append(result.Pinned, record)
			continue
		}
		result.Candidates = append(result.Candidates, record)
	}
	return result, nil
}

func normalizeScheme(scheme types.VersionScheme) (types.VersionScheme, error) {
	switch scheme {
	case "", types.VersionSchemeNuGet:
		return types.VersionSchemeNuGet, nil
	case types.VersionSchemeDebian:
		return types.VersionSchemeDebian, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported version scheme")
	}
}
