package util

func Ptr[V any](v V) *V {
	return &v
}

// Deref returns the pointed value or the zero value of V when p is nil.
func Deref[V any](p *V) V {
	if p == nil {
		var zero V
		return zero
	}
	return *p
}
