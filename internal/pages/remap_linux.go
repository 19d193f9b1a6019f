//go:build linux

package pages

import "golang.org/x/sys/unix"

// Remap resizes a region, moving it if the kernel cannot grow it in place.
// Contents up to the smaller of the two lengths are preserved.
func Remap(b []byte, size int) ([]byte, error) {
	n, err := Length(size)
	if err != nil {
		return nil, err
	}
	if n == cap(b) {
		return b[:cap(b)], nil
	}
	return unix.Mremap(b[:cap(b)], n, unix.MREMAP_MAYMOVE)
}
