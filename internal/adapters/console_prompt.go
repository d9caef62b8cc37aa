package adapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"psup/internal/types"
)

// ConsoleAdapter implements the operator prompt and report rendering on a
// plain reader/writer pair. Confirmation is fail-closed: only an explicit
// "y" or "yes" counts as an affirmative, including on read errors.
type ConsoleAdapter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleAdapter() *ConsoleAdapter {
	return NewConsoleAdapterWith(os.Stdin, os.Stdout)
}

func NewConsoleAdapterWith(in io.Reader, out io.Writer) *ConsoleAdapter {
	return &ConsoleAdapter{in: bufio.NewReader(in), out: out}
}

func (c *ConsoleAdapter) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (c *ConsoleAdapter) Progress(current int, total int, name string) {
	fmt.Fprintf(c.out, "[%d/%d] checking %s\n", current, total, name)
}

func (c *ConsoleAdapter) Records(records []types.PackageRecord) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINSTALLED\tLATEST\tSTATUS")
	for _, record := range records {
		latest := record.LatestVersion
		if latest == "" {
			latest = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", record.Name, record.InstalledVersion, latest, record.Status)
	}
	w.Flush()
}

func (c *ConsoleAdapter) Outcomes(outcomes []types.UpgradeOutcome) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTARGET\tRESULT\tDETAIL")
	for _, outcome := range outcomes {
		detail := outcome.Detail
		if detail == "" {
			detail = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", outcome.Record.Name, outcome.Record.LatestVersion, outcome.Result, detail)
	}
	w.Flush()
}

func (c *ConsoleAdapter) Message(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
