// Package gcd computes the greatest common divisor of two or more int32
// values with either the Euclidean or the Stein (binary) algorithm.
//
// Every function accepts operands from [-math.MaxInt32, math.MaxInt32] and
// returns a non-negative result. Passing math.MinInt32 yields ErrOutOfRange,
// and passing only zeroes yields ErrInvalidArgument.
package gcd

import (
	"math"

	"github.com/pkg/errors"
)

// Errors returned by functions in this package. Use errors.Cause to compare.
var (
	ErrInvalidArgument = errors.New("all operands are zero")
	ErrOutOfRange      = errors.New("operand is math.MinInt32")
)

// validate checks the whole operand set: no operand may be math.MinInt32 and
// at least one must be non-zero.
func validate(operands ...int32) error {
	zero := true
	for i, v := range operands {
		if v == math.MinInt32 {
			return errors.Wrapf(ErrOutOfRange, "operand %d", i)
		}
		if v != 0 {
			zero = false
		}
	}
	if zero {
		return errors.Wrapf(ErrInvalidArgument, "%d operands", len(operands))
	}
	return nil
}

func abs(v int32) uint32 {
	if v < 0 {
		return uint32(-v)
	}
	return uint32(v)
}

func euclid(m, n uint32) uint32 {
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// Euclidean returns the GCD of a and b using repeated remainders.
func Euclidean(a, b int32) (int32, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return int32(euclid(abs(a), abs(b))), nil
}

// Euclidean3 returns the GCD of a, b and c using repeated remainders.
func Euclidean3(a, b, c int32) (int32, error) {
	if err := validate(a, b, c); err != nil {
		return 0, err
	}
	return int32(euclid(euclid(abs(a), abs(b)), abs(c))), nil
}

// EuclideanN is like Euclidean but folds any number of further operands into
// the result. The all-zero check covers a, b and others together.
func EuclideanN(a, b int32, others ...int32) (int32, error) {
	if err := validate(append([]int32{a, b}, others...)...); err != nil {
		return 0, err
	}
	d := euclid(abs(a), abs(b))
	for _, v := range others {
		if d == 1 {
			break
		}
		d = euclid(d, abs(v))
	}
	return int32(d), nil
}

// ExtEuclidean returns the GCD of a and b along with the Bézout coefficients.
// That is, it returns x, y, d such that:
//
//	x*a + y*b == d == Euclidean(a, b)
func ExtEuclidean(a, b int32) (x, y, d int32, err error) {
	if err := validate(a, b); err != nil {
		return 0, 0, 0, err
	}
	if b == 0 {
		if a < 0 {
			return -1, 0, -a, nil
		}
		return 1, 0, a, nil
	}
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var x0, y0 int32
	x0, x = 1, 0
	y0, y = 0, 1
	c := a
	d = b
	for {
		q, r := c/d, c%d
		if r == 0 {
			break
		}
		c = d
		d = r
		x0, x = x, x0-q*x
		y0, y = y, y0-q*y
	}
	if d < 0 {
		x, y, d = -x, -y, -d
	}
	return x, y, d, nil
}
