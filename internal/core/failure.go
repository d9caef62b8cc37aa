package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// publisherCheckMarkers are the known PowerShellGet message fragments for
// an Authenticode publisher mismatch during module installation.
var publisherCheckMarkers = []string{
	"skippublishercheck",
	"publisher check",
	"authenticode issuer",
	"authenticode publisher",
	"is not catalog signed",
}

// MatchesPublisherCheck reports whether command output describes a
// publisher/trust verification failure.
func MatchesPublisherCheck(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range publisherCheckMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsPublisherCheckFailure reports whether an upgrade error was caused by
// the publisher/trust verification check, as opposed to any other failure.
// Only packages failing this predicate's positive case are eligible for
// the skip-verification retry.
func IsPublisherCheckFailure(err error) bool {
	if err == nil {
		return false
	}
	if errbuilder.CodeOf(err) == errbuilder.CodePermissionDenied {
		return true
	}
	return MatchesPublisherCheck(err.Error())
}
