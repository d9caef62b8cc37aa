package adapters

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner executes a command and returns stdout and stderr
// separately. Adapters take a runner so tests can substitute canned
// output for real shell invocations.
type CommandRunner func(ctx context.Context, name string, args []string) (stdout []byte, stderr []byte, err error)

func runCommand(ctx context.Context, name string, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}
