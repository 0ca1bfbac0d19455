// Package rpo implements the Rescue Prime Optimized permutation and sponge
// over the 64-bit Goldilocks field p = 2^64 - 2^32 + 1. It provides the
// commitment digest and the fixed permutation consumed by the Falcon
// hash-to-point construction. This modulus is unrelated to the Falcon ring
// modulus and the two element types must not be mixed.
package rpo

import "math/bits"

// Modulus is the Goldilocks prime 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

// epsilon = 2^64 mod p = 2^32 - 1.
const epsilon uint64 = 0xFFFFFFFF

// Elem is a field element modulo Modulus, kept in canonical form [0, p).
type Elem uint64

// NewElem reduces v into canonical form.
func NewElem(v uint64) Elem {
	if v >= Modulus {
		v -= Modulus
	}
	return Elem(v)
}

// Add returns a + b mod p.
func Add(a, b Elem) Elem {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry == 1 {
		s += epsilon
	}
	if s >= Modulus {
		s -= Modulus
	}
	return Elem(s)
}

// Sub returns a - b mod p.
func Sub(a, b Elem) Elem {
	d, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow == 1 {
		d -= epsilon
	}
	return Elem(d)
}

// Mul returns a * b mod p using a 128-bit intermediate.
func Mul(a, b Elem) Elem {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return reduce128(hi, lo)
}

// reduce128 folds hi*2^64 + lo into [0, p) using
// 2^64 = 2^32 - 1 and 2^96 = -1 (mod p).
func reduce128(hi, lo uint64) Elem {
	hiHi := hi >> 32
	hiLo := hi & epsilon
	t, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow == 1 {
		t -= epsilon
	}
	s, carry := bits.Add64(t, hiLo*epsilon, 0)
	if carry == 1 {
		s += epsilon
	}
	if s >= Modulus {
		s -= Modulus
	}
	return Elem(s)
}

// Exp returns a^e mod p by square-and-multiply.
func Exp(a Elem, e uint64) Elem {
	res := Elem(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			res = Mul(res, base)
		}
		base = Mul(base, base)
		e >>= 1
	}
	return res
}
