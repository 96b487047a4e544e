// Package options implements the functional-option plumbing shared by the
// configurable notectl components (decode and batch configuration).
package options

// Option mutates a configuration value of type T. Options in this codebase
// cannot fail: invalid values are clamped or ignored by the component that
// defines them, keeping the decoding core total.
type Option[T any] func(*T)

// Apply runs opts against target in order. Nil options are skipped so callers
// can build option slices conditionally.
func Apply[T any](target *T, opts ...Option[T]) {
	for _, opt := range opts {
		if opt != nil {
			opt(target)
		}
	}
}
