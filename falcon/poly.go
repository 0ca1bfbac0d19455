package falcon

// Poly is a ring element in coefficient form: coefficient i multiplies x^i
// in Z_Q[x]/(x^N+1). Value semantics keep decoded polynomials immutable
// from the caller's point of view.
type Poly [N]Elem

// EvalPoly is a ring element in evaluation (NTT) form. It is a distinct
// type from Poly so pointwise operations cannot be applied to
// coefficient-form data by mistake.
type EvalPoly [N]Elem

// Equal reports coefficient-wise equality.
func (p *Poly) Equal(other *Poly) bool {
	return *p == *other
}

// NormSquared returns the squared L2 norm of p over centered
// representatives: each coefficient is mapped into (-Q/2, Q/2] before
// squaring. The uint64 accumulator cannot overflow: N * (Q/2)^2 < 2^35.
func (p *Poly) NormSquared() uint64 {
	var acc uint64
	for _, c := range p {
		v := int64(Center(c))
		acc += uint64(v * v)
	}
	return acc
}

// Hadamard returns the pointwise product of two evaluation-form elements.
// This is ring multiplication on the other side of the transform.
func Hadamard(a, b *EvalPoly) EvalPoly {
	var out EvalPoly
	for i := range out {
		out[i] = Mul(a[i], b[i])
	}
	return out
}

// SubEval returns the pointwise difference a - b in evaluation form.
func SubEval(a, b *EvalPoly) EvalPoly {
	var out EvalPoly
	for i := range out {
		out[i] = Sub(a[i], b[i])
	}
	return out
}
