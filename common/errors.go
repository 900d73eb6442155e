package common

import (
  "fmt"
)

// MissingFieldError is returned when a payload lacks a key the entity
// kind documents as required.
type MissingFieldError struct {
  Kind  string
  Field string
}

func (e *MissingFieldError) Error() string {
  return fmt.Sprintf("%s: missing required field %q", e.Kind, e.Field)
}

// MalformedFieldError is returned when a payload value has the wrong
// JSON type for its documented field. No coercion is attempted.
type MalformedFieldError struct {
  Kind  string
  Field string
  Want  string
}

func (e *MalformedFieldError) Error() string {
  return fmt.Sprintf("%s: field %q is not a %s", e.Kind, e.Field, e.Want)
}

// KindMismatchError is returned when two entities of different kinds are
// compared. Cross-kind comparison is a caller bug, so it fails instead
// of reporting the entities as unequal.
type KindMismatchError struct {
  Kind      string
  OtherKind string
}

func (e *KindMismatchError) Error() string {
  return fmt.Sprintf("cannot compare %s with %s", e.Kind, e.OtherKind)
}
