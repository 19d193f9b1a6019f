//go:build linux || darwin || freebsd || netbsd || openbsd

package pages

import (
	"errors"

	"golang.org/x/sys/unix"
)

// PageSize reports the system page size.
func PageSize() int { return unix.Getpagesize() }

// Map creates a private anonymous read/write mapping of at least size bytes.
func Map(size int) ([]byte, error) {
	n, err := Length(size)
	if err != nil {
		return nil, err
	}
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap releases a region returned by Map or Remap.
func Unmap(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	err := unix.Munmap(b[:cap(b)])
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
