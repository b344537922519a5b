package algorithms

import "fmt"

// Requirement is an RFC 2119 implementation requirement level.
// The zero value means no requirement is attached.
type Requirement string

const (
	RequirementRequired    Requirement = "REQUIRED"
	RequirementRecommended Requirement = "RECOMMENDED"
	RequirementOptional    Requirement = "OPTIONAL"
)

// Valid reports whether r is one of the three defined levels
func (r Requirement) Valid() bool {
	switch r {
	case RequirementRequired, RequirementRecommended, RequirementOptional:
		return true
	}
	return false
}

// Rank orders requirement levels from weakest to strongest.
// An absent requirement ranks below OPTIONAL.
func (r Requirement) Rank() int {
	switch r {
	case RequirementOptional:
		return 1
	case RequirementRecommended:
		return 2
	case RequirementRequired:
		return 3
	}
	return 0
}

func (r Requirement) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler
func (r Requirement) MarshalText() ([]byte, error) {
	if r != "" && !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRequirement, string(r))
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only the three upper-case tags are accepted.
func (r *Requirement) UnmarshalText(text []byte) error {
	v := Requirement(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRequirement, string(text))
	}
	*r = v
	return nil
}
