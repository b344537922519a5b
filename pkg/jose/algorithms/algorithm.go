package algorithms

import (
	"encoding/json"
	"fmt"

	jose "github.com/go-jose/go-jose/v3"
)

// Algorithm describes a JOSE algorithm identifier and its implementation
// requirement. Two descriptors are equal only when both name and requirement
// match, so the same name with a different requirement is a distinct member
// of a Family.
type Algorithm struct {
	name        string
	requirement Requirement
}

// wireAlgorithm is the JSON form of an Algorithm
type wireAlgorithm struct {
	Name        string      `json:"name"`
	Requirement Requirement `json:"requirement,omitempty"`
}

// New creates a descriptor. Pass an empty Requirement for none.
func New(name string, requirement Requirement) Algorithm {
	return Algorithm{name: name, requirement: requirement}
}

// None is the unsecured "none" algorithm
var None = New("none", RequirementRequired)

// JWS signing algorithms (RFC 7518 section 3.1, RFC 8037, RFC 8812)
var (
	HS256 = New(string(jose.HS256), RequirementOptional)
	HS384 = New(string(jose.HS384), RequirementOptional)
	HS512 = New(string(jose.HS512), RequirementOptional)

	RS256 = New(string(jose.RS256), RequirementRecommended)
	RS384 = New(string(jose.RS384), RequirementOptional)
	RS512 = New(string(jose.RS512), RequirementOptional)

	PS256 = New(string(jose.PS256), RequirementOptional)
	PS384 = New(string(jose.PS384), RequirementOptional)
	PS512 = New(string(jose.PS512), RequirementOptional)

	ES256  = New(string(jose.ES256), RequirementRecommended)
	ES256K = New("ES256K", RequirementOptional) // not defined by go-jose
	ES384  = New(string(jose.ES384), RequirementOptional)
	ES512  = New(string(jose.ES512), RequirementOptional)

	EdDSA = New(string(jose.EdDSA), RequirementOptional)
)

// Name returns the algorithm identifier (e.g., "RS256")
func (a Algorithm) Name() string {
	return a.name
}

// Requirement returns the attached requirement level.
// ok is false when no requirement is attached.
func (a Algorithm) Requirement() (req Requirement, ok bool) {
	return a.requirement, a.requirement != ""
}

// SignatureAlgorithm returns the identifier as a go-jose signature algorithm
func (a Algorithm) SignatureAlgorithm() jose.SignatureAlgorithm {
	return jose.SignatureAlgorithm(a.name)
}

func (a Algorithm) String() string {
	return a.name
}

// ToJSON serializes the descriptor as {"name": ..., "requirement": ...}.
// pretty selects indented multi-line output over the compact form.
func (a Algorithm) ToJSON(pretty bool) (string, error) {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(a, "", "  ")
	} else {
		b, err = json.Marshal(a)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON implements json.Marshaler
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAlgorithm{Name: a.name, Requirement: a.requirement})
}

// UnmarshalJSON implements json.Unmarshaler.
// A missing or null requirement decodes as absent.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var w wireAlgorithm
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAlgorithm, err)
	}
	if w.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidAlgorithm)
	}
	*a = New(w.Name, w.Requirement)
	return nil
}
