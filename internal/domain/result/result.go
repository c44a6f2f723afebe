// Package result provides the success-or-failure container returned by
// every application operation for expected failure outcomes. Unexpected
// infrastructure errors travel beside it as ordinary Go errors.
package result

// Reason is an optional machine-readable classification attached to an
// error entry, letting the HTTP boundary distinguish error categories
// without inspecting messages.
type Reason struct {
	Name        string
	Description string
}

// Error is a single structured failure entry.
type Error struct {
	Message string
	Reason  *Reason
}

// WithReason returns a copy of the error carrying the given reason.
func (e Error) WithReason(name, description string) Error {
	e.Reason = &Reason{Name: name, Description: description}
	return e
}

// Reason names shared across the application.
const (
	ReasonNotFound                = "NotFound"
	ReasonReferencedEntityMissing = "ReferencedEntityMissing"
	ReasonEmptyCollection         = "EmptyCollection"
)

// Void marks results whose success carries no payload (update, delete).
type Void struct{}

// Result holds either a value or an ordered list of errors.
type Result[T any] struct {
	value  T
	errors []Error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// OkVoid is the payload-free success value.
func OkVoid() Result[Void] {
	return Ok(Void{})
}

// Fail builds a failed result with a single plain error message.
func Fail[T any](message string) Result[T] {
	return Result[T]{errors: []Error{{Message: message}}}
}

// FailWith builds a failed result from prepared error entries.
func FailWith[T any](errs ...Error) Result[T] {
	return Result[T]{errors: errs}
}

// IsSuccess reports whether the result carries a value.
func (r Result[T]) IsSuccess() bool {
	return len(r.errors) == 0
}

// IsFailure reports whether the result carries errors.
func (r Result[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// Value returns the payload; meaningful only for successful results.
func (r Result[T]) Value() T {
	return r.value
}

// Errors returns the failure entries in the order they were recorded.
func (r Result[T]) Errors() []Error {
	return r.errors
}
