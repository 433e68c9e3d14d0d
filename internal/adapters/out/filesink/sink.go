// Package filesink implements ports.ExportSink on the local filesystem.
package filesink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"orderprocessing/internal/pkg/errs"
)

// DirSink creates export files inside a single directory.
type DirSink struct {
	dir string
}

// NewDirSink creates a sink rooted at dir. The directory is created on demand.
func NewDirSink(dir string) *DirSink {
	if dir == "" {
		dir = "."
	}
	return &DirSink{dir: dir}
}

// Create creates (or truncates) the named file. Names must not contain path separators.
func (s *DirSink) Create(name string) (io.WriteCloser, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, errs.NewValueIsInvalidErrorWithCause("export name is invalid", fmt.Errorf("%q is not a plain file name", name))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	return os.Create(filepath.Join(s.dir, name))
}
