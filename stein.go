package gcd

import "math/bits"

// binary returns the GCD of u and v, which must not both be zero.
func binary(u, v uint32) uint32 {
	switch {
	case u == v:
		return u
	case u == 0:
		return v
	case v == 0:
		return u
	}
	shift := bits.TrailingZeros32(u | v)
	u >>= bits.TrailingZeros32(u)
	for {
		v >>= bits.TrailingZeros32(v)
		if u > v {
			u, v = v, u
		}
		v -= u
		if v == 0 {
			return u << shift
		}
	}
}

// binary3 returns the GCD of u, v and w, which must not all be zero.
func binary3(u, v, w uint32) uint32 {
	// with two zeroes there is no common power of two to extract
	switch {
	case u == 0 && v == 0:
		return w
	case u == 0 && w == 0:
		return v
	case v == 0 && w == 0:
		return u
	case u == 0:
		return binary(v, w)
	case v == 0:
		return binary(u, w)
	case w == 0:
		return binary(u, v)
	}
	shift := bits.TrailingZeros32(u | v | w)
	u >>= bits.TrailingZeros32(u)
	for v != 0 && w != 0 {
		v >>= bits.TrailingZeros32(v)
		w >>= bits.TrailingZeros32(w)
		if u > v {
			u, v = v, u
		}
		if v > w {
			v, w = w, v
		}
		if u > v {
			u, v = v, u
		}
		v -= u
		w -= u
	}
	// u is odd here, so binary adds no further shift
	return binary(u, v|w) << shift
}

// Stein returns the GCD of a and b using shifts and subtraction only.
func Stein(a, b int32) (int32, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return int32(binary(abs(a), abs(b))), nil
}

// Stein3 returns the GCD of a, b and c using shifts and subtraction only.
func Stein3(a, b, c int32) (int32, error) {
	if err := validate(a, b, c); err != nil {
		return 0, err
	}
	return int32(binary3(abs(a), abs(b), abs(c))), nil
}

// SteinN is like Stein but folds any number of further operands into the
// result. If any of others is 1 or -1 the result is 1 without further work.
func SteinN(a, b int32, others ...int32) (int32, error) {
	if err := validate(append([]int32{a, b}, others...)...); err != nil {
		return 0, err
	}
	for _, v := range others {
		if abs(v) == 1 {
			return 1, nil
		}
	}
	d := uint32(0)
	if a != 0 || b != 0 {
		d = binary(abs(a), abs(b))
	}
	for _, v := range others {
		if d != 0 || v != 0 {
			d = binary(d, abs(v))
		}
	}
	return int32(d), nil
}
