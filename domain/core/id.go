package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// RunID identifies a single analysis run, used to correlate log entries
type RunID ID

// NewRunID creates a new run identifier
func NewRunID() RunID {
	return RunID(NewID())
}

func (id RunID) String() string { return ID(id).String() }

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(s), nil
}

// Fingerprint is a short hash tying outputs and log entries back to their inputs
type Fingerprint string

// NewFingerprint hashes the given parts into a hex fingerprint
func NewFingerprint(parts ...string) Fingerprint {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return Fingerprint(hex.EncodeToString(sum[:8]))
}

// String returns the string representation
func (f Fingerprint) String() string {
	return string(f)
}
