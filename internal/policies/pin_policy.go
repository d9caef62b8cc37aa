package policies

import (
	"strings"

	"psup/internal/shared"
	"psup/internal/types"
)

// PinPolicy decides which modules are held back from upgrades. Patterns
// are exact names, "prefix*" forms, or a bare "*"; matching is
// case-insensitive. Invalid (empty) patterns are skipped.
type PinPolicy struct {
	exact    map[string]struct{}
	prefixes []string
	wildcard bool
}

func NewPinPolicy(pins types.PinSet) PinPolicy {
	policy := PinPolicy{exact: map[string]struct{}{}}
	for _, pattern := range pins.Pins {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			policy.wildcard = true
			continue
		}
		normalized := shared.NormalizeModuleName(trimmed)
		if strings.HasSuffix(normalized, "*") {
			policy.prefixes = append(policy.prefixes, strings.TrimSuffix(normalized, "*"))
			continue
		}
		policy.exact[normalized] = struct{}{}
	}
	return policy
}

// Pinned reports whether a module name is held back.
func (p PinPolicy) Pinned(name string) bool {
	if p.wildcard {
		return true
	}
	normalized := shared.NormalizeModuleName(name)
	if _, ok := p.exact[normalized]; ok {
		return true
	}
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}
