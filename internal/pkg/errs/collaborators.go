package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrStore marks a failure of the order store (fetch or update).
	ErrStore = errors.New("store failure")

	// ErrServiceCommunication marks a failed call to the classification service.
	ErrServiceCommunication = errors.New("service communication failure")

	// ErrExport marks a failed write to an export sink.
	ErrExport = errors.New("export failure")
)

// StoreError wraps a failed order store operation.
//
// Example:
//
//	if err := db.Find(&dtos).Error; err != nil {
//	    return nil, errs.NewStoreErrorWithCause("fetch orders", err)
//	}
type StoreError struct {
	Operation string
	Cause     error
}

func NewStoreErrorWithCause(operation string, cause error) *StoreError {
	return &StoreError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStore, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStore, e.Operation)
}

func (e *StoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStore}
	}
	return []error{ErrStore, e.Cause}
}

// ServiceCommunicationError wraps a failed call to a remote service.
type ServiceCommunicationError struct {
	Service string
	Cause   error
}

func NewServiceCommunicationErrorWithCause(service string, cause error) *ServiceCommunicationError {
	return &ServiceCommunicationError{
		Service: service,
		Cause:   cause,
	}
}

func (e *ServiceCommunicationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrServiceCommunication, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrServiceCommunication, e.Service)
}

func (e *ServiceCommunicationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrServiceCommunication}
	}
	return []error{ErrServiceCommunication, e.Cause}
}

// ExportError wraps a failed write to a named export sink.
type ExportError struct {
	Name  string
	Cause error
}

func NewExportErrorWithCause(name string, cause error) *ExportError {
	return &ExportError{
		Name:  name,
		Cause: cause,
	}
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrExport, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrExport, e.Name)
}

func (e *ExportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrExport}
	}
	return []error{ErrExport, e.Cause}
}
