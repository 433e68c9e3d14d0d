package ports

import "io"

// ExportSink creates named, row-oriented text destinations for order exports.
// Create and the returned writer may fail with I/O errors.
type ExportSink interface {
	Create(name string) (io.WriteCloser, error)
}
