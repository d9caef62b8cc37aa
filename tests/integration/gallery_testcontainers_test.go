//go:build integration

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"psup/internal/adapters"
	"psup/internal/types"
)

// galleryMockScript serves a minimal NuGet v2 FindPackagesById feed for a
// single module with one stable and one prerelease version.
const galleryMockScript = `
import http.server

FEED = """<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry><m:properties xmlns:m="schemas.microsoft.com/ado/2007/08/dataservices/metadata" xmlns:d="schemas.microsoft.com/ado/2007/08/dataservices">
    <d:Version>1.4.0</d:Version><d:IsPrerelease>false</d:IsPrerelease>
  </m:properties></entry>
  <entry><m:properties xmlns:m="schemas.microsoft.com/ado/2007/08/dataservices/metadata" xmlns:d="schemas.microsoft.com/ado/2007/08/dataservices">
    <d:Version>2.0.0</d:Version><d:IsPrerelease>true</d:IsPrerelease>
  </m:properties></entry>
</feed>"""

class Handler(http.server.BaseHTTPRequestHandler):
    def do_GET(self):
        if "Pester" in self.path:
            body = FEED.encode()
            self.send_response(200)
            self.send_header("Content-Type", "application/atom+xml")
            self.send_header("Content-Length", str(len(body)))
            self.end_headers()
            self.wfile.write(body)
        else:
            self.send_error(404)

    def log_message(self, *args):
        pass

http.server.HTTPServer(("0.0.0.0", 8080), Handler).serve_forever()
`

func startGalleryMock(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "python:3.12-alpine",
		ExposedPorts: []string{"8080/tcp"},
		Cmd:          []string{"python", "-c", galleryMockScript},
		WaitingFor:   wait.ForListeningPort("8080/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8080/tcp")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())
	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return endpoint, cleanup
}

func TestGalleryAdapterAgainstContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers integration in short mode")
	}

	ctx := t.Context()
	endpoint, cleanup := startGalleryMock(ctx, t)
	t.Cleanup(cleanup)

	adapter := adapters.NewGalleryRegistryAdapter(endpoint, types.VersionSchemeNuGet, 10, 2, 100)

	version, err := adapter.FindLatestStable(ctx, "Pester")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version, "prerelease 2.0.0 must not be selected")

	_, err = adapter.FindLatestStable(ctx, "NoSuchModule")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
