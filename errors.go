package ethiomorph

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	ErrUnknownVerbType     ErrorKind = "unknown_verb_type"
	ErrUnknownTense        ErrorKind = "unknown_tense"
	ErrUnknownSubject      ErrorKind = "unknown_subject"
	ErrRootTooShort        ErrorKind = "root_too_short"
	ErrUnknownDerivedClass ErrorKind = "unknown_derived_class"
	ErrUnknownStem         ErrorKind = "unknown_stem"
)

// MorphError is the structured error returned by generation calls.
// Callers switch on Kind; Message is the display text.
type MorphError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"error"`
}

func (e *MorphError) Error() string { return e.Message }

// Is matches any *MorphError of the same kind, so a bare
// &MorphError{Kind: ErrRootTooShort} works as a target for errors.Is.
func (e *MorphError) Is(target error) bool {
	t, ok := target.(*MorphError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *MorphError {
	return &MorphError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" if err is not a *MorphError.
func KindOf(err error) ErrorKind {
	var me *MorphError
	if errors.As(err, &me) {
		return me.Kind
	}
	return ""
}

func rootTooShort(root string) *MorphError {
	return newError(ErrRootTooShort, "Root must be at least 3 letters (Got '%s')", root)
}
