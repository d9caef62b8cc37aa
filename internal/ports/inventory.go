package ports

import (
	"context"

	"psup/internal/types"
)

// InventoryPort lists locally installed modules. An empty slice with a nil
// error means there is nothing to do; an error means the inventory itself
// could not be retrieved and the run must not continue.
type InventoryPort interface {
	ListInstalled(ctx context.Context) ([]types.InstalledPackage, error)
}
