package ports

import (
	"context"

	"psup/internal/types"
)

// UpgraderPort performs one in-place module upgrade. Publisher/trust
// verification failures are tagged with errbuilder.CodePermissionDenied so
// the workflow can route them to the retry tier.
type UpgraderPort interface {
	Upgrade(ctx context.Context, name string, opts types.UpgradeOptions) error
}
