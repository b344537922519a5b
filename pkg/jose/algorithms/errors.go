package algorithms

import "errors"

// Errors returned by the algorithms package
var (
	// ErrNotFound is returned when a name does not resolve to "none" or a
	// member of the SIGNATURE family
	ErrNotFound = errors.New("algorithm not found")

	// ErrInvalidRequirement is returned when decoding an unknown requirement tag
	ErrInvalidRequirement = errors.New("invalid requirement")

	// ErrInvalidAlgorithm is returned when a descriptor fails to decode
	ErrInvalidAlgorithm = errors.New("invalid algorithm descriptor")
)
