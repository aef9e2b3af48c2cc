//go:build !linux

package platform

// Open reports ErrUnsupported outside linux.
func Open(opts Options) (Backend, func(), error) {
	return nil, func() {}, ErrUnsupported
}
