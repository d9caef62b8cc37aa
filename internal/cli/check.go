package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"psup/internal/adapters"
	"psup/internal/app"
	"psup/internal/ports"
	"psup/internal/types"
)

type checkOptions struct {
	Source       string
	Scheme       string
	Pins         string
	Timeout      int
	Retries      int
	RetryDelayMs int
	JSON         bool
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare installed modules against the gallery without upgrading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Registry feed endpoint (defaults to the public gallery)")
	cmd.Flags().StringVar(&opts.Scheme, "scheme", "nuget", "Version comparison scheme (nuget, deb)")
	cmd.Flags().StringVar(&opts.Pins, "pins", "", "Pins file holding modules back from upgrades")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 0, "Registry request timeout in seconds")
	cmd.Flags().IntVar(&opts.Retries, "retries", -1, "Registry request retries")
	cmd.Flags().IntVar(&opts.RetryDelayMs, "retry-delay-ms", 0, "Registry retry delay in milliseconds")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Emit records as JSON")

	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("scheme", cmd.Flags().Lookup("scheme"))
	_ = viper.BindPFlag("pins", cmd.Flags().Lookup("pins"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("retries", cmd.Flags().Lookup("retries"))
	_ = viper.BindPFlag("retry_delay_ms", cmd.Flags().Lookup("retry-delay-ms"))

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	if opts.JSON {
		// Keep stdout machine-readable; progress and messages go to stderr.
		service.Reporter = adapters.NewConsoleAdapterWith(os.Stdin, os.Stderr)
	}
	result, err := service.Check(ctx, checkRequest(cmd, opts))
	if err != nil {
		return err
	}
	return renderCheck(service.Reporter, os.Stdout, result, opts.JSON)
}

func renderCheck(reporter ports.ReporterPort, out io.Writer, result app.CheckResult, jsonOut bool) error {
	if len(result.Records) == 0 {
		reporter.Message("no installed modules found, nothing to do")
		return nil
	}
	if jsonOut {
		encoded, err := json.MarshalIndent(result.Records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}
	reporter.Records(result.Records)
	reporter.Message("checked %d module(s): %d update(s) available, %d pinned",
		len(result.Records), len(result.Candidates)+len(result.Pinned), len(result.Pinned))
	return nil
}

func checkRequest(cmd *cobra.Command, opts checkOptions) app.CheckRequest {
	return app.CheckRequest{
		Source:       resolveString(cmd, opts.Source, "source", "source"),
		Scheme:       types.VersionScheme(strings.ToLower(resolveString(cmd, opts.Scheme, "scheme", "scheme"))),
		PinsPath:     resolveString(cmd, opts.Pins, "pins", "pins"),
		TimeoutSec:   resolveInt(cmd, opts.Timeout, "timeout", "timeout"),
		Retries:      resolveInt(cmd, opts.Retries, "retries", "retries"),
		RetryDelayMs: resolveInt(cmd, opts.RetryDelayMs, "retry_delay_ms", "retry-delay-ms"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
