package policy

import "errors"

var (
	// ErrInvalidPolicy is returned when a policy document fails to decode or
	// names an unknown family or requirement level
	ErrInvalidPolicy = errors.New("invalid algorithm policy")

	// ErrUnknownAlgorithm is returned when an allow-listed name is not a
	// member of any selected family
	ErrUnknownAlgorithm = errors.New("algorithm not in selected families")
)
