package falcon

import (
	"encoding/binary"

	"rpo-falcon512/rpo"
)

// HashToPoint deterministically maps (message digest, nonce) to a ring
// element with coefficients in [0, Q), using the fixed RPO permutation.
func HashToPoint(message rpo.Word, nonce *[SigNonceLen]byte) Poly {
	return hashToPoint(message, nonce, rpo.Permute)
}

// hashToPoint runs the sponge schedule against an injected permutation:
// absorb the nonce into the rate range and permute once, then absorb the
// message digest into the rate range while keeping the rest of the
// nonce-dependent state, then squeeze 64 rate blocks reduced mod Q.
func hashToPoint(message rpo.Word, nonce *[SigNonceLen]byte, permute rpo.Permutation) Poly {
	var state [rpo.StateWidth]rpo.Elem

	nonceElems := DecodeNonce(nonce)
	copy(state[rpo.RateStart:], nonceElems[:])
	permute(&state)

	copy(state[rpo.RateStart:rpo.RateStart+len(message)], message[:])

	var p Poly
	i := 0
	for i < N {
		permute(&state)
		for _, a := range state[rpo.RateStart:] {
			p[i] = Elem(uint64(a) % Q)
			i++
		}
	}
	return p
}

// DecodeNonce converts the 40 nonce bytes into 8 field elements of the
// commitment field, 5 little-endian bytes per element. Five bytes never
// reach the modulus, so no reduction is needed.
func DecodeNonce(nonce *[SigNonceLen]byte) [SigNonceLen / 5]rpo.Elem {
	var out [SigNonceLen / 5]rpo.Elem
	var buf [8]byte
	for i := range out {
		copy(buf[:5], nonce[5*i:])
		out[i] = rpo.Elem(binary.LittleEndian.Uint64(buf[:]))
	}
	return out
}
