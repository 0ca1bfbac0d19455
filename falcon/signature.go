package falcon

import (
	"fmt"
	"os"

	"rpo-falcon512/rpo"
)

// Signature is a Falcon-512 signature together with the extended public
// key it was produced under. It is built only by DecodeSignature, which
// validates both blobs and caches their decoded polynomials; the value is
// read-only afterwards and safe for concurrent use.
//
// The signature is the pair (s1, s2) with s1 = c - s2*h, where h is the
// public key polynomial and c the hash-to-point of the message. Only s2 is
// transmitted; verification recovers s1 and checks the pair's squared L2
// norm against the scheme bound.
type Signature struct {
	pk  [PublicKeySize]byte
	sig [SignatureSize]byte

	pkPoly  Poly
	sigPoly Poly
}

// DecodeSignature parses the 1563-byte serialization (public key blob
// followed by signature blob) and decodes both polynomials. It fails as a
// whole if either blob is invalid; no partially-valid Signature exists.
func DecodeSignature(data []byte) (*Signature, error) {
	if len(data) != EncodedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBlobLength, len(data), EncodedSize)
	}
	var s Signature
	copy(s.pk[:], data[:PublicKeySize])
	copy(s.sig[:], data[PublicKeySize:])

	var err error
	if s.pkPoly, err = DecodePublicKey(s.pk[:]); err != nil {
		return nil, err
	}
	if s.sigPoly, err = DecompressSignature(s.sig[:]); err != nil {
		return nil, err
	}
	dbg(os.Stderr, "[Decode] ok pk=%dB sig=%dB\n", PublicKeySize, SignatureSize)
	return &s, nil
}

// Bytes returns the serialized form: public key blob then signature blob,
// no length prefixes.
func (s *Signature) Bytes() []byte {
	out := make([]byte, 0, EncodedSize)
	out = append(out, s.pk[:]...)
	return append(out, s.sig[:]...)
}

// PublicKeyPoly returns the decoded public key polynomial h.
func (s *Signature) PublicKeyPoly() Poly {
	return s.pkPoly
}

// SigPoly returns the decoded signature polynomial s2.
func (s *Signature) SigPoly() Poly {
	return s.sigPoly
}

// Nonce returns the 40-byte nonce component of the signature.
func (s *Signature) Nonce() [SigNonceLen]byte {
	var n [SigNonceLen]byte
	copy(n[:], s.sig[SigHeaderLen:SigHeaderLen+SigNonceLen])
	return n
}

// PublicKeyCommitment returns the commitment digest of the public key
// polynomial, the value a verifier is expected to know out of band.
func (s *Signature) PublicKeyCommitment() rpo.Word {
	return PublicKeyCommitment(&s.pkPoly)
}

// PublicKeyCommitment hashes h's coefficients, lifted into the commitment
// field, into a fixed-width digest.
func PublicKeyCommitment(h *Poly) rpo.Word {
	elems := make([]rpo.Elem, N)
	for i, c := range h {
		elems[i] = rpo.Elem(c)
	}
	return rpo.HashElements(elems)
}

// Verify reports whether this signature is valid for the given message
// digest under a public key matching the given commitment. It is a pure
// predicate: all failure modes are a plain reject.
func (s *Signature) Verify(message, commitment rpo.Word) bool {
	if PublicKeyCommitment(&s.pkPoly) != commitment {
		return false
	}

	nonce := s.Nonce()
	c := HashToPoint(message, &nonce)

	cEval := NTT(c)
	s2Eval := NTT(s.sigPoly)
	hEval := NTT(s.pkPoly)

	// s1 = c - s2*h, recovered through the evaluation domain.
	prod := Hadamard(&s2Eval, &hEval)
	s1Eval := SubEval(&cEval, &prod)
	s1 := InvNTT(s1Eval)

	norm := s1.NormSquared() + s.sigPoly.NormSquared()
	dbg(os.Stderr, "[Verify] norm=%d bound=%d\n", norm, L2Bound)
	return norm < L2Bound
}
