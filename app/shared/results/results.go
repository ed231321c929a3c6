// Package results carries the success-or-failure envelope services return.
// Business failures travel as a failure payload with a nil Go error; errors
// are reserved for infrastructure problems the caller should retry.
package results

// OperationResult holds either a success or a failure payload. Both may be
// nil when an operation has nothing to report.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

func (r OperationResult[S, F]) IsSuccess() bool {
	return r.Success != nil
}

func (r OperationResult[S, F]) IsFailure() bool {
	return r.Failure != nil
}

// Success wraps a success payload.
func Success[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// Failure wraps a failure payload.
func Failure[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}
