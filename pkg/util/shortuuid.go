package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUUID returns a new base58 encoded UUID
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}

// NewPrefixedID returns a base58 encoded UUID with a kind prefix, e.g. "wh_4Ys...".
func NewPrefixedID(prefix string) string {
	return prefix + "_" + NewUUID()
}
