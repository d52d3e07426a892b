package domain

import (
	"github.com/google/uuid"
)

// ID identifies an entry. IDs are opaque, derived from the creation
// timestamp and increase monotonically within a process, so comparing two
// IDs as strings orders them by creation
type ID string

// String returns the raw token
func (id ID) String() string {
	return string(id)
}

// IDSource issues new entry IDs
type IDSource interface {
	NextID() ID
}

// UUIDSource issues time-ordered UUIDv7 IDs
type UUIDSource struct{}

// NewUUIDSource returns the default ID source
func NewUUIDSource() UUIDSource {
	return UUIDSource{}
}

// NextID returns a fresh UUIDv7. Like uuid.New it panics if the entropy
// source fails, since any other ID would break the ordering
func (UUIDSource) NextID() ID {
	return ID(uuid.Must(uuid.NewV7()).String())
}

// IDSourceFunc adapts a function to IDSource
type IDSourceFunc func() ID

// NextID calls f
func (f IDSourceFunc) NextID() ID {
	return f()
}
