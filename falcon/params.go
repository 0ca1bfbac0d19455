// Package falcon implements the verification core of the Falcon-512
// signature scheme in the variant that binds signatures to an RPO
// commitment of the public key: ring arithmetic in Z_q[x]/(x^512+1) with
// q = 12289, the fixed-width public key codec, the compressed signature
// codec, the sponge hash-to-point, and the verification predicate.
//
// Signing and key generation are external: this package only decodes and
// verifies their byte output.
package falcon

const (
	// N is the ring degree, the number of polynomial coefficients.
	N = 512
	// LogN = log2(N), carried in the blob header bytes.
	LogN = 9
	// Q is the coefficient modulus. Q = 1 mod 2N, so the negacyclic
	// transform of degree N exists.
	Q = 12289

	// PublicKeySize is the public key blob length: one header byte plus
	// 512 coefficients packed at 14 bits each.
	PublicKeySize = 1 + (N*14)/8
	// PublicKeyHeader is the fixed public key header byte, log2(N).
	PublicKeyHeader = LogN

	// SigHeaderLen, SigNonceLen and SigPolySize partition the signature
	// blob: header byte, nonce, then the compressed s2 stream.
	SigHeaderLen = 1
	SigNonceLen  = 40
	SigPolySize  = 625
	// SignatureSize is the total signature blob length.
	SignatureSize = SigHeaderLen + SigNonceLen + SigPolySize
	// SignatureHeader is the fixed signature header byte 0b00111001:
	// compressed-encoding tag 0b01 in the upper nibble, log2(N) below.
	SignatureHeader = 0x30 | LogN

	// EncodedSize is the serialized Signature: public key blob followed
	// by signature blob, no length prefixes.
	EncodedSize = PublicKeySize + SignatureSize

	// maxMagnitude is the largest coefficient magnitude representable by
	// the compressed codec.
	maxMagnitude = 2047

	// L2Bound is the strict upper bound on |s1|^2 + |s2|^2 for a valid
	// signature.
	L2Bound = 34034726
)
