package falcon

// Elem is a ring coefficient modulo Q, kept in canonical form [0, Q).
// It is deliberately a distinct type from rpo.Elem: the two moduli serve
// different roles and must never share a representation.
type Elem uint16

// NewElem reduces v into canonical form.
func NewElem(v uint32) Elem {
	return Elem(v % Q)
}

// Add returns a + b mod Q.
func Add(a, b Elem) Elem {
	v := uint32(a) + uint32(b)
	if v >= Q {
		v -= Q
	}
	return Elem(v)
}

// Sub returns a - b mod Q.
func Sub(a, b Elem) Elem {
	v := uint32(a) + Q - uint32(b)
	if v >= Q {
		v -= Q
	}
	return Elem(v)
}

// Neg returns -a mod Q.
func Neg(a Elem) Elem {
	if a == 0 {
		return 0
	}
	return Elem(Q - uint32(a))
}

// Mul returns a * b mod Q using a 32-bit intermediate.
func Mul(a, b Elem) Elem {
	return Elem(uint32(a) * uint32(b) % Q)
}

// Exp returns a^e mod Q by square-and-multiply.
func Exp(a Elem, e uint32) Elem {
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

// Inv returns a^-1 mod Q via Fermat. Inv(0) = 0.
func Inv(a Elem) Elem {
	return Exp(a, Q-2)
}

// Center maps a to its representative in (-Q/2, Q/2].
func Center(a Elem) int32 {
	v := int32(a)
	if v > Q/2 {
		v -= Q
	}
	return v
}
