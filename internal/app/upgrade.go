package app

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"psup/internal/core"
	"psup/internal/types"
)

// Upgrade runs the full interactive workflow: check, confirm, upgrade each
// candidate with force mode, then offer one skip-verification retry for
// the modules that failed the publisher check. Per-module failures never
// stop the loop; declining either prompt is a valid terminal path.
func (s Service) Upgrade(ctx context.Context, req UpgradeRequest) (UpgradeResult, error) {
	check, err := s.Check(ctx, req.CheckRequest)
	if err != nil {
		return UpgradeResult{}, err
	}
	result := UpgradeResult{Check: check}
	if len(check.Records) == 0 {
		s.Reporter.Message("no installed modules found, nothing to do")
		return result, nil
	}
	s.Reporter.Records(check.Records)
	for _, pinned := range check.Pinned {
		s.Reporter.Message("%s %s is pinned, holding back %s", pinned.Name, pinned.InstalledVersion, pinned.LatestVersion)
	}
	if len(check.Candidates) == 0 {
		s.Reporter.Message("all modules are up to date")
		return result, nil
	}

	if !s.Console.Confirm(fmt.Sprintf("Upgrade %d module(s)?", len(check.Candidates))) {
		result.Declined = true
		s.Reporter.Message("upgrade skipped by user")
		return result, nil
	}

	var retryIndexes []int
	for _, record := range check.Candidates {
		assert.NotEmpty(ctx, record.Name, "upgrade candidate must have a name")
		outcome := types.UpgradeOutcome{Record: record, Result: types.UpgradeSuccess}
		attemptErr := s.Upgrader.Upgrade(ctx, record.Name, types.UpgradeOptions{Force: true})
		switch {
		case attemptErr == nil:
			log.Info().Str("module", record.Name).Str("version", record.LatestVersion).Msg("module upgraded")
		case core.IsPublisherCheckFailure(attemptErr):
			outcome.Result = types.UpgradeFailedPublisherCheck
			outcome.Detail = attemptErr.Error()
			retryIndexes = append(retryIndexes, len(result.Outcomes))
			log.Warn().Str("module", record.Name).Msg("publisher check failed, eligible for retry")
		default:
			outcome.Result = types.UpgradeFailedOther
			outcome.Detail = attemptErr.Error()
			log.Error().Err(attemptErr).Str("module", record.Name).Msg("module upgrade failed")
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if len(retryIndexes) == 0 {
		s.Reporter.Outcomes(result.Outcomes)
		return result, nil
	}

	retrySet := make([]types.PackageRecord, 0, len(retryIndexes))
	for _, index := range retryIndexes {
		retrySet = append(retrySet, result.Outcomes[index].Record)
	}
	s.Reporter.Message("%d module(s) failed the publisher check:", len(retrySet))
	s.Reporter.Records(retrySet)

	if !s.Console.Confirm("Retry these upgrades with the publisher check skipped?") {
		result.RetryDeclined = true
		for _, index := range retryIndexes {
			result.Outcomes[index].Result = types.UpgradeNotRetried
		}
		s.Reporter.Message("retry skipped by user")
		s.Reporter.Outcomes(result.Outcomes)
		return result, nil
	}

	for _, index := range retryIndexes {
		record := result.Outcomes[index].Record
		retryErr := s.Upgrader.Upgrade(ctx, record.Name, types.UpgradeOptions{Force: true, SkipVerification: true})
		if retryErr == nil {
			result.Outcomes[index].Result = types.UpgradeRetrySuccess
			result.Outcomes[index].Detail = ""
			log.Info().Str("module", record.Name).Msg("module upgraded with publisher check skipped")
			continue
		}
		// Second failure is terminal, there is no further retry tier.
		result.Outcomes[index].Result = types.UpgradeRetryFailed
		result.Outcomes[index].Detail = retryErr.Error()
		log.Error().Err(retryErr).Str("module", record.Name).Msg("retry failed")
	}
	s.Reporter.Outcomes(result.Outcomes)
	return result, nil
}
