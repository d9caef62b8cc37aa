package adapters

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"psup/internal/shared"
	"psup/internal/types"
)

// psInventoryScript lists gallery-installed modules as JSON. ConvertTo-Json
// emits a bare object for a single result, an array otherwise.
const psInventoryScript = "Get-InstalledModule | Select-Object Name,Version,InstalledLocation | ConvertTo-Json -Compress"

type PSModuleInventoryAdapter struct {
	Shell string
	Run   CommandRunner
}

func NewPSModuleInventoryAdapter() PSModuleInventoryAdapter {
	return PSModuleInventoryAdapter{Shell: "pwsh", Run: runCommand}
}

type psInstalledModule struct {
	Name              string `json:"Name"`
	Version           string `json:"Version"`
	InstalledLocation string `json:"InstalledLocation"`
}

func (a PSModuleInventoryAdapter) ListInstalled(ctx context.Context) ([]types.InstalledPackage, error) {
	stdout, stderr, err := a.Run(ctx, a.Shell, []string{"-NoProfile", "-NonInteractive", "-Command", psInventoryScript})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list installed modules").
			WithCause(shared.CommandError(stderr, err))
	}
	trimmed := strings.TrimSpace(string(stdout))
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "{") {
		trimmed = "[" + trimmed + "]"
	}
	var modules []psInstalledModule
	if err := json.Unmarshal([]byte(trimmed), &modules); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse installed module list").
			WithCause(err)
	}
	var installed []types.InstalledPackage
	for _, module := range modules {
		name := strings.TrimSpace(module.Name)
		if name == "" {
			continue
		}
		installed = append(installed, types.InstalledPackage{
			Name:    name,
			Version: strings.TrimSpace(module.Version),
			Path:    module.InstalledLocation,
		})
	}
	return installed, nil
}
