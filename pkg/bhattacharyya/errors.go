package bhattacharyya

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMethod is returned when a method tag or value matches none of
	// the supported estimators.
	ErrInvalidMethod = errors.New("invalid method")

	// ErrInvalidInput is returned for samples the selected estimator cannot use.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOption is returned when an Option carries an unusable value.
	ErrInvalidOption = errors.New("invalid option")
)

// MethodError reports an unrecognized method.
//
// errors.Is(err, ErrInvalidMethod) reports true for a *MethodError.
type MethodError struct {
	Name string
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("invalid method %q: want one of noiseless, hist, autohist, continuous", e.Name)
}

func (e *MethodError) Unwrap() error { return ErrInvalidMethod }

// InputError reports why a sample was rejected. Sample is 1 or 2 for a
// specific sample and 0 when the combination of both is at fault.
type InputError struct {
	Sample int
	Reason string
}

func (e *InputError) Error() string {
	if e.Sample == 0 {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: sample %d: %s", e.Sample, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
