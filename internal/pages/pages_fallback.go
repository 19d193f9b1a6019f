//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package pages

const fallbackPageSize = 4096

// PageSize reports the rounding granularity used by the heap fallback.
func PageSize() int { return fallbackPageSize }

// Map allocates a heap region when anonymous mappings are not available.
func Map(size int) ([]byte, error) {
	n, err := Length(size)
	if err != nil {
		return nil, err
	}
	return make([]byte, n), nil
}

// Remap copies into a new heap region.
func Remap(b []byte, size int) ([]byte, error) {
	n, err := Length(size)
	if err != nil {
		return nil, err
	}
	if n == cap(b) {
		return b[:cap(b)], nil
	}
	nb := make([]byte, n)
	copy(nb, b[:cap(b)])
	return nb, nil
}

// Unmap is a no-op; the GC reclaims heap regions.
func Unmap(b []byte) error { return nil }
