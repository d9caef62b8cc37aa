package ports

import "psup/internal/types"

// PinsPort loads the optional pin/exclusion list. An empty path yields an
// empty set.
type PinsPort interface {
	LoadPins(path string) (types.PinSet, error)
}
