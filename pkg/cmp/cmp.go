// Package cmp holds small generic helpers for optional values.
package cmp

// PtrOrDefault returns the value t points to, or def if t is nil.
func PtrOrDefault[T any](t *T, def T) T {
	if t == nil {
		return def
	}
	return *t
}

// ValOrDefault returns v, or def if v is the zero value.
func ValOrDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// UnpackPtr returns the value that t points to or T's zero value if t is nil.
func UnpackPtr[T any](t *T) T {
	var r T
	if t != nil {
		r = *t
	}
	return r
}
