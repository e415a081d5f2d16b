package core

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// ID represents a 16-byte identifier
type ID uuid.UUID

// IDFromInt deterministically maps a 32-bit integer to an identifier.
// The integer occupies the first four bytes (big-endian); the rest are zero,
// so 0 maps to the nil identifier.
func IDFromInt(n int32) ID {
	var id ID
	binary.BigEndian.PutUint32(id[:4], uint32(n))
	return id
}

// Int reverses IDFromInt. ok is false when the identifier was not produced by it.
func (id ID) Int() (n int32, ok bool) {
	for _, b := range id[4:] {
		if b != 0 {
			return 0, false
		}
	}
	return int32(binary.BigEndian.Uint32(id[:4])), true
}

// UUID returns the identifier as a uuid.UUID
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// String returns the canonical 36-character representation
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsEmpty checks if the ID is the nil identifier
func (id ID) IsEmpty() bool {
	return uuid.UUID(id) == uuid.Nil
}

// ParseID parses a canonical identifier string
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, NewInvalidArgumentError("id", err.Error())
	}
	return ID(u), nil
}
