package common

import (
  "github.com/cespare/xxhash/v2"
)

// Entity is implemented by every object that carries a platform-assigned
// ID. Equality and hashing are keyed on that ID alone, so two fetches of
// the same entity compare equal even when other fields have drifted.
type Entity interface {
  EntityID() string
  EntityKind() string
}

// Identity is the identity mixin embedded by every entity kind. It holds
// the platform ID and the concrete kind tag set at construction.
type Identity struct {
  ID   string
  Kind string
}

func (i Identity) EntityID() string {
  return i.ID
}

func (i Identity) EntityKind() string {
  return i.Kind
}

// Equals reports whether other refers to the same platform object.
// Comparing entities of different kinds returns a KindMismatchError.
func (i Identity) Equals(other Entity) (bool, error) {
  if other.EntityKind() != i.Kind {
    return false, &KindMismatchError{Kind: i.Kind, OtherKind: other.EntityKind()}
  }
  return other.EntityID() == i.ID, nil
}

// Hash digests the platform ID. Entities that are Equal hash alike.
func (i Identity) Hash() uint64 {
  return xxhash.Sum64String(i.ID)
}
