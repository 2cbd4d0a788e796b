package stegopix

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyGeneration is returned when no public exponent coprime to φ(n)
	// is found within the retry budget.
	ErrKeyGeneration = errors.New("no usable public exponent found")

	// ErrDecode is returned when a decrypted payload is not valid text,
	// typically because the wrong private key was used.
	ErrDecode = errors.New("decrypted payload is not valid text")

	// ErrBlockOverflow is returned when a decrypted block does not fit the
	// block size implied by the modulus, typically because the wrong private
	// key was used.
	ErrBlockOverflow = errors.New("decrypted block does not fit the block size")

	// ErrNoSentinel is returned when extraction finds no end-of-message
	// marker in the carrier's low-order bits.
	ErrNoSentinel = errors.New("no end-of-message sentinel found")

	// ErrCapacity is returned when a payload needs more bits than the
	// carrier can hold. Use errors.As with *CapacityError for the amounts.
	ErrCapacity = errors.New("message too large for carrier")
)

// CapacityError reports a payload that exceeds the carrier's capacity.
type CapacityError struct {
	Needed    int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message too large for carrier: %d bits needed, %d available (overflow: %d bits)",
		e.Needed, e.Available, e.Overflow())
}

// Overflow returns the number of bits by which the payload exceeds the
// carrier's capacity.
func (e *CapacityError) Overflow() int {
	return e.Needed - e.Available
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}
