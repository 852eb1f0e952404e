// Package normalization maps loosely written option names (flags, env vars,
// config values) onto typed enum values.
package normalization

import (
	"slices"
	"strings"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

// Normalizer resolves case-insensitive, whitespace-tolerant names to values of T.
type Normalizer[T comparable] struct {
	name        string
	validValues map[string]T
	validKeys   []string
}

// NewNormalizer creates a normalizer for the option called name.
func NewNormalizer[T comparable](name string, values map[string]T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		key := Clean(k)
		normalized[key] = v
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return &Normalizer[T]{name: name, validValues: normalized, validKeys: keys}
}

// Lookup returns the value for raw and whether it was recognized.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.validValues[Clean(raw)]
	return v, ok
}

// Normalize returns the value for raw, or a config error listing the valid options.
func (n *Normalizer[T]) Normalize(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, perrors.ConfigError("invalid "+n.name).
		WithContext("value", raw).
		WithContext("valid", strings.Join(n.validKeys, ", ")).
		Build()
}

// ValidKeys returns the accepted names in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	return slices.Clone(n.validKeys)
}

// Clean is the normalization applied to both keys and lookups.
func Clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
