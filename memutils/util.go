package memutils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two.
// The second return value is false if the result does not fit in T.
func AlignUp[T constraints.Unsigned](value T, alignment T) (T, bool) {
	aligned := (value + alignment - 1) &^ (alignment - 1)
	return aligned, aligned >= value
}

// AddNoOverflow returns a+b and false if the sum wrapped around.
func AddNoOverflow[T constraints.Unsigned](a, b T) (T, bool) {
	sum := a + b
	return sum, sum >= a
}
