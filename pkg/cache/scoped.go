package cache

// ScopedKeyer wraps a Keyer with a prefix so that several users or event
// years can share one Redis or MongoDB backend without colliding.
//
// Example usage:
//
//	// Keep 2022 answers apart from other years
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "aoc2022:")
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

// AnswerKey generates a prefixed answer key.
func (k *ScopedKeyer) AnswerKey(day int, inputHash string) string {
	return k.prefix + k.inner.AnswerKey(day, inputHash)
}
