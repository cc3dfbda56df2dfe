package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation, so
// different campaigns or clients get separate cache namespaces on a shared
// backend.
//
// Example usage:
//
//	// Campaign-specific keys
//	campaignKeyer := NewScopedKeyer(NewDefaultKeyer(), "campaign:summer24:")
//
//	// Shared keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ValidationKey generates a prefixed key for validation results.
func (k *ScopedKeyer) ValidationKey(layoutHash string, opts ValidationKeyOpts) string {
	return k.prefix + k.inner.ValidationKey(layoutHash, opts)
}

// AdaptKey generates a prefixed key for adaptation results.
func (k *ScopedKeyer) AdaptKey(layoutHash string, opts AdaptKeyOpts) string {
	return k.prefix + k.inner.AdaptKey(layoutHash, opts)
}
