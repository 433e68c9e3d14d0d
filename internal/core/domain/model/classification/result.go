// Package classification holds the verdict returned by the remote
// classification service for a type B order.
package classification

// Status is the verdict reported by the classification service.
type Status string

const (
	Success Status = "success"
	Failure Status = "failure"
)

// Result is an immutable classification verdict with its numeric score.
type Result struct {
	status Status
	score  float64
}

// NewResult builds a Result. Any status other than Success is kept as reported
// and treated as unsuccessful.
func NewResult(status Status, score float64) Result {
	return Result{
		status: status,
		score:  score,
	}
}

func (r Result) Status() Status {
	return r.status
}

func (r Result) Score() float64 {
	return r.score
}

// IsSuccess reports whether the service accepted the order.
func (r Result) IsSuccess() bool {
	return r.status == Success
}
