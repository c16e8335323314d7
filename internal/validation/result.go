package validation

import (
	"fmt"

	"sharegov/internal/domain"
)

// Result accumulates validation failures over one validation pass. Each
// top-level validator operation works against its own Result, so checks
// stay independent: a failing check records its failure and later checks
// still run. The zero value is ready to use.
type Result struct {
	failures []domain.ValidationFailure
}

// Add records one failure. The message is formatted with fmt.Sprintf.
func (r *Result) Add(code domain.ErrorCode, field, format string, args ...interface{}) {
	r.failures = append(r.failures, domain.ValidationFailure{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// OK reports whether no failures were recorded.
func (r *Result) OK() bool { return len(r.failures) == 0 }

// Failures returns the recorded failures in insertion order.
func (r *Result) Failures() []domain.ValidationFailure { return r.failures }

// Err returns nil when the pass succeeded, otherwise a single
// *domain.ValidationError carrying every recorded failure.
func (r *Result) Err() error {
	if len(r.failures) == 0 {
		return nil
	}
	return &domain.ValidationError{
		Message:  "validation failed",
		Failures: r.failures,
	}
}
