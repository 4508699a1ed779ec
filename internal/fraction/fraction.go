// Package fraction holds the integer fraction type shared by the answer
// checker, the exercise extractor and the tutor.
package fraction

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrFormat is returned by Parse when the input is not "int/int".
	ErrFormat = errors.New("invalid fraction format")

	// ErrZeroDenominator is returned by Parse for inputs like "3/0".
	ErrZeroDenominator = errors.New("zero denominator")
)

// Fraction is a numerator/denominator pair. It is never normalized: the
// checker needs to see exactly what the learner typed.
type Fraction struct {
	Num int64
	Den int64
}

// New returns the fraction num/den.
func New(num, den int64) Fraction {
	return Fraction{Num: num, Den: den}
}

// String formats the fraction as "num/den".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Equal reports whether both parts match exactly.
func (f Fraction) Equal(o Fraction) bool {
	return f.Num == o.Num && f.Den == o.Den
}

// Equivalent reports whether f and o name the same rational value. The
// cross products are computed exactly, so int64-sized parts cannot wrap.
func (f Fraction) Equivalent(o Fraction) bool {
	lhs := new(big.Int).Mul(big.NewInt(f.Num), big.NewInt(o.Den))
	rhs := new(big.Int).Mul(big.NewInt(o.Num), big.NewInt(f.Den))
	return lhs.Cmp(rhs) == 0
}

// Reducible reports whether numerator and denominator share a factor > 1.
func (f Fraction) Reducible() bool {
	return GCD(f.Num, f.Den) > 1
}

// Swapped reports whether f is o turned upside down.
func (f Fraction) Swapped(o Fraction) bool {
	return f.Num == o.Den && f.Den == o.Num
}

// Parse parses "a/b" into a Fraction. The input is split on the first "/"
// and each side is trimmed before parsing as a base-10 integer.
func Parse(s string) (Fraction, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(parts) != 2 {
		return Fraction{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: numerator: %v", ErrFormat, err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: denominator: %v", ErrFormat, err)
	}
	if den == 0 {
		return Fraction{}, fmt.Errorf("%w: %q", ErrZeroDenominator, s)
	}
	return Fraction{Num: num, Den: den}, nil
}

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm on the magnitudes: GCD(0, 0) = 0 and GCD(a, 0) = |a|. The
// result is unsigned since |math.MinInt64| does not fit in an int64.
func GCD(a, b int64) uint64 {
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
