package order

import (
	"fmt"

	"orderprocessing/internal/pkg/errs"
)

// Status is the processing outcome recorded on an order.
//
// Every order starts as New. Exactly one of the type processors may move it
// away from New; when none applies the orchestrator assigns UnknownType.
// DBError is assigned in memory only, after a failed write to the store.
type Status string

const (
	New Status = "new"

	// Type A outcomes.
	Exported     Status = "exported"
	ExportFailed Status = "export_failed"

	// Type B outcomes.
	Processed  Status = "processed"
	Pending    Status = "pending"
	Error      Status = "error"
	APIError   Status = "api_error"
	APIFailure Status = "api_failure"

	// Type C outcomes.
	Completed  Status = "completed"
	InProgress Status = "in_progress"

	// Orchestrator outcomes.
	UnknownType Status = "unknown_type"
	DBError     Status = "db_error"
)

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		New:          {},
		Exported:     {},
		ExportFailed: {},
		Processed:    {},
		Pending:      {},
		Error:        {},
		APIError:     {},
		APIFailure:   {},
		Completed:    {},
		InProgress:   {},
		UnknownType:  {},
		DBError:      {},
	}
}

// Validate checks that the status is one of the defined values.
// Used when restoring orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
