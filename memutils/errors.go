package memutils

import "github.com/pkg/errors"

// ErrAllocationExhausted is the error returned when the platform allocator could not satisfy a request
var ErrAllocationExhausted error = errors.New("platform allocator could not satisfy the request")

// ErrCorruptionDetected is the error returned when the guard bytes written after a block have been overwritten
var ErrCorruptionDetected error = errors.New("memory corruption detected past the end of a block")

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")
