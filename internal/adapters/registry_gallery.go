package adapters

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"psup/internal/core"
	"psup/internal/shared"
	"psup/internal/types"
)

// DefaultGalleryEndpoint is the public PowerShell Gallery NuGet v2 feed.
const DefaultGalleryEndpoint = "https://www.powershellgallery.com/api/v2"

const defaultGalleryTimeout = 30 * time.Second
const defaultGalleryRetries = 3
const defaultGalleryRetryDelay = 200 * time.Millisecond
const maxGalleryRetryDelay = 2 * time.Second
const maxGalleryPages = 20

// GalleryRegistryAdapter resolves latest stable module versions from a
// NuGet v2 feed via FindPackagesById. Prerelease entries are dropped and
// the highest remaining version is selected with the configured scheme.
type GalleryRegistryAdapter struct {
	Endpoint   string
	Scheme     types.VersionScheme
	Client     *http.Client
	Retries    int
	RetryDelay time.Duration
}

func NewGalleryRegistryAdapter(endpoint string, scheme types.VersionScheme, timeoutSec int, retries int, retryDelayMs int) GalleryRegistryAdapter {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultGalleryEndpoint
	}
	if scheme == "" {
		scheme = types.VersionSchemeNuGet
	}
	timeout := defaultGalleryTimeout
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	retryCount := defaultGalleryRetries
	if retries >= 0 {
		retryCount = retries
	}
	retryDelay := defaultGalleryRetryDelay
	if retryDelayMs > 0 {
		retryDelay = time.Duration(retryDelayMs) * time.Millisecond
	}
	return GalleryRegistryAdapter{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		Scheme:     scheme,
		Client:     &http.Client{Timeout: timeout},
		Retries:    retryCount,
		RetryDelay: retryDelay,
	}
}

type galleryFeed struct {
	Entries []galleryEntry `xml:"entry"`
	Links   []galleryLink  `xml:"link"`
}

type galleryLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

// nextPage returns the continuation URL of a paginated feed, or empty when
// this is the last page.
func (f galleryFeed) nextPage() string {
	for _, link := range f.Links {
		if link.Rel == "next" {
			return strings.TrimSpace(link.Href)
		}
	}
	return ""
}

type galleryEntry struct {
	Properties galleryEntryProperties `xml:"properties"`
}

type galleryEntryProperties struct {
	Version      string `xml:"Version"`
	IsPrerelease bool   `xml:"IsPrerelease"`
}

func (a GalleryRegistryAdapter) FindLatestStable(ctx context.Context, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("module name is empty")
	}
	comparer := core.NewVersionComparer(a.Scheme)
	best := ""
	requestURL := fmt.Sprintf("%s/FindPackagesById()?id='%s'", a.Endpoint, url.QueryEscape(trimmed))
	// Feeds paginate; follow rel="next" links until the last page.
	for page := 0; requestURL != ""; page++ {
		if page >= maxGalleryPages {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("gallery feed for %s exceeded %d pages", trimmed, maxGalleryPages))
		}
		body, err := a.get(ctx, requestURL)
		if err != nil {
			return "", err
		}
		var feed galleryFeed
		if err := xml.Unmarshal(body, &feed); err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to parse gallery feed").
				WithCause(err)
		}
		for _, entry := range feed.Entries {
			version := strings.TrimSpace(entry.Properties.Version)
			if version == "" || entry.Properties.IsPrerelease {
				continue
			}
			// Prerelease suffixes may appear without the IsPrerelease flag on
			// older feed servers.
			if strings.Contains(version, "-") {
				continue
			}
			if !comparer.IsValid(version) {
				continue
			}
			if best == "" {
				best = version
				continue
			}
			if result, err := comparer.Compare(version, best); err == nil && result > 0 {
				best = version
			}
		}
		requestURL = feed.nextPage()
	}
	if best == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no stable release found for %s", trimmed))
	}
	return best, nil
}

func (a GalleryRegistryAdapter) get(ctx context.Context, requestURL string) ([]byte, error) {
	var lastErr error
	delay := a.RetryDelay
	for attempt := 0; attempt <= a.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxGalleryRetryDelay {
				delay = maxGalleryRetryDelay
			}
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to build gallery request").
				WithCause(err)
		}
		resp, err := a.client().Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("module not found in registry").
				WithCause(shared.HTTPStatusError(resp.StatusCode, requestURL))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			lastErr = shared.HTTPStatusErrorWithBody(resp.StatusCode, requestURL, strings.TrimSpace(string(body)))
			continue
		}
		if readErr != nil {
			lastErr = readErr
			continue
		}
		return body, nil
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("gallery lookup failed").
		WithCause(lastErr)
}

func (a GalleryRegistryAdapter) client() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return &http.Client{Timeout: defaultGalleryTimeout}
}
