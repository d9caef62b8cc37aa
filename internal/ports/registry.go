package ports

import "context"

// RegistryPort resolves the latest stable (non-prerelease) version of a
// module. Unknown names return an error carrying errbuilder.CodeNotFound;
// any other error is a lookup failure local to that module.
type RegistryPort interface {
	FindLatestStable(ctx context.Context, name string) (string, error)
}
