package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"

	"orderprocessing/internal/core/domain/model/classification"

	"github.com/stretchr/testify/mock"
)

type MockClassifier struct{ mock.Mock }

func (m *MockClassifier) Classify(ctx context.Context, orderID int64) (classification.Result, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(classification.Result), args.Error(1)
}

// memorySink keeps every created export in memory.
type memorySink struct {
	files      map[string]*memoryFile
	createErr  error
	writeErr   error
	closeErr   error
	lastCreate string
}

func newMemorySink() *memorySink {
	return &memorySink{files: make(map[string]*memoryFile)}
}

func (s *memorySink) Create(name string) (io.WriteCloser, error) {
	s.lastCreate = name
	if s.createErr != nil {
		return nil, s.createErr
	}
	f := &memoryFile{writeErr: s.writeErr, closeErr: s.closeErr}
	s.files[name] = f
	return f, nil
}

type memoryFile struct {
	bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (f *memoryFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.Buffer.Write(p)
}

func (f *memoryFile) Close() error {
	f.closed = true
	return f.closeErr
}

var errDiskFull = errors.New("no space left on device")
