package falcon

// Negacyclic number-theoretic transform of degree N. The twiddle table
// holds powers of psi, a primitive 2N-th root of unity mod Q, in
// bit-reversed order; the forward transform leaves the evaluation vector in
// bit-reversed order and the inverse consumes the same table backwards with
// negated entries, so the two compose to the identity without an explicit
// reordering pass.

var (
	zetas [N]Elem // psi^bitrev(k)
	invN  Elem    // N^-1 mod Q
)

func init() {
	g := findGenerator()
	psi := Exp(g, (Q-1)/(2*N))
	for k := 0; k < N; k++ {
		zetas[k] = Exp(psi, bitrev(uint32(k), LogN))
	}
	invN = Inv(NewElem(N))
}

// findGenerator returns a generator of the multiplicative group mod Q.
// Q-1 = 2^12 * 3, so g generates iff g^((Q-1)/2) != 1 and g^((Q-1)/3) != 1.
func findGenerator() Elem {
	for g := Elem(2); ; g++ {
		if Exp(g, (Q-1)/2) != 1 && Exp(g, (Q-1)/3) != 1 {
			return g
		}
	}
}

func bitrev(v uint32, bitLen int) uint32 {
	var r uint32
	for i := 0; i < bitLen; i++ {
		r = r<<1 | (v>>i)&1
	}
	return r
}

// NTT transforms p into evaluation form.
func NTT(p Poly) EvalPoly {
	f := [N]Elem(p)
	k := 1
	for length := N / 2; length >= 1; length /= 2 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := Mul(zeta, f[j+length])
				f[j+length] = Sub(f[j], t)
				f[j] = Add(f[j], t)
			}
		}
	}
	return EvalPoly(f)
}

// InvNTT transforms e back into coefficient form. It is the exact inverse
// of NTT: for every p, InvNTT(NTT(p)) == p.
func InvNTT(e EvalPoly) Poly {
	f := [N]Elem(e)
	k := N - 1
	for length := 1; length < N; length *= 2 {
		for start := 0; start < N; start += 2 * length {
			zeta := Neg(zetas[k])
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = Add(t, f[j+length])
				f[j+length] = Mul(zeta, Sub(t, f[j+length]))
			}
		}
	}
	for i := range f {
		f[i] = Mul(f[i], invN)
	}
	return Poly(f)
}

// mulNaive is the schoolbook negacyclic product, the reference the
// transform path is checked against in tests.
func mulNaive(a, b *Poly) Poly {
	var out Poly
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			t := Mul(ai, bj)
			idx := i + j
			if idx < N {
				out[idx] = Add(out[idx], t)
			} else {
				out[idx-N] = Sub(out[idx-N], t)
			}
		}
	}
	return out
}
