// Package uid provides unique identifier generators.
//
// NumberID generators produce int64 identifiers suitable for primary keys,
// StringID generators produce opaque string identifiers suitable for external
// references (correlation IDs, object keys).
package uid

// NumberID generates unique numeric identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
