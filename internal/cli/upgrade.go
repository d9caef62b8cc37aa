package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"psup/internal/app"
	"psup/internal/types"
)

func newUpgradeCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade outdated modules after interactive confirmation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpgrade(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Registry feed endpoint (defaults to the public gallery)")
	cmd.Flags().StringVar(&opts.Scheme, "scheme", "nuget", "Version comparison scheme (nuget, deb)")
	cmd.Flags().StringVar(&opts.Pins, "pins", "", "Pins file holding modules back from upgrades")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 0, "Registry request timeout in seconds")
	cmd.Flags().IntVar(&opts.Retries, "retries", -1, "Registry request retries")
	cmd.Flags().IntVar(&opts.RetryDelayMs, "retry-delay-ms", 0, "Registry retry delay in milliseconds")

	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("scheme", cmd.Flags().Lookup("scheme"))
	_ = viper.BindPFlag("pins", cmd.Flags().Lookup("pins"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("retries", cmd.Flags().Lookup("retries"))
	_ = viper.BindPFlag("retry_delay_ms", cmd.Flags().Lookup("retry-delay-ms"))

	return cmd
}

func runUpgrade(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Upgrade(ctx, app.UpgradeRequest{CheckRequest: checkRequest(cmd, opts)})
	if err != nil {
		return err
	}
	if len(result.Outcomes) == 0 {
		return nil
	}
	upgraded := 0
	failed := 0
	for _, outcome := range result.Outcomes {
		switch outcome.Result {
		case types.UpgradeSuccess, types.UpgradeRetrySuccess:
			upgraded++
		case types.UpgradeFailedOther, types.UpgradeRetryFailed:
			failed++
		}
	}
	fmt.Printf("upgraded %d of %d module(s), %d failed\n", upgraded, len(result.Outcomes), failed)
	return nil
}
