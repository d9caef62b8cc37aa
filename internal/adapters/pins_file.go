package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"psup/internal/types"
)

type PinsFileAdapter struct{}

func NewPinsFileAdapter() PinsFileAdapter {
	return PinsFileAdapter{}
}

func (a PinsFileAdapter) LoadPins(path string) (types.PinSet, error) {
	if strings.TrimSpace(path) == "" {
		return types.PinSet{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PinSet{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("pins file not found").
			WithCause(err)
	}
	var pins types.PinSet
	if err := yaml.Unmarshal(data, &pins); err != nil {
		return types.PinSet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pins yaml").
			WithCause(err)
	}
	return pins, nil
}
