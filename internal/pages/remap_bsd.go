//go:build darwin || freebsd || netbsd || openbsd

package pages

// Remap resizes a region by mapping a new one and copying.
// Contents up to the smaller of the two lengths are preserved.
func Remap(b []byte, size int) ([]byte, error) {
	n, err := Length(size)
	if err != nil {
		return nil, err
	}
	if n == cap(b) {
		return b[:cap(b)], nil
	}
	nb, err := Map(n)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:cap(b)])
	if err := Unmap(b); err != nil {
		_ = Unmap(nb)
		return nil, err
	}
	return nb, nil
}
