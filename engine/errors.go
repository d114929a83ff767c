package engine

import (
	"errors"
	"fmt"
)

// ErrInternal marks a broken engine invariant. Errors wrapping it are bugs,
// not bad input, and callers should not try to recover from them.
var ErrInternal = errors.New("internal battle invariant violated")

// InvalidActionError is returned when a submitted action cannot legally be
// taken. The battle state is left untouched and the same trainer may submit
// a different action.
type InvalidActionError struct {
	TrainerIndex int
	Reason       string
}

func (e InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action for trainer %d: %s", e.TrainerIndex, e.Reason)
}

func newInvalidAction(trainerIndex int, format string, a ...any) InvalidActionError {
	return InvalidActionError{TrainerIndex: trainerIndex, Reason: fmt.Sprintf(format, a...)}
}

var (
	errWrongColumnCount = errors.New("wrong number of columns")
	errUnknownType      = errors.New("unknown pokemon type")
)

// DataLoadError is returned when static battle data is missing or malformed.
// It identifies the file and, when known, the row that failed to parse.
type DataLoadError struct {
	File string
	Row  int
	Err  error
}

func (e DataLoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("loading %s: row %d: %s", e.File, e.Row, e.Err)
	}

	return fmt.Sprintf("loading %s: %s", e.File, e.Err)
}

func (e DataLoadError) Unwrap() error {
	return e.Err
}
