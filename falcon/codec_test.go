package falcon

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for iter := 0; iter < 10; iter++ {
		h := randomPoly(rng)
		blob := EncodePublicKey(&h)
		got, err := DecodePublicKey(blob[:])
		if err != nil {
			t.Fatalf("DecodePublicKey: %v", err)
		}
		if !got.Equal(&h) {
			t.Fatalf("public key roundtrip mismatch at iteration %d", iter)
		}
	}
}

func TestDecodePublicKeyRejects(t *testing.T) {
	var h Poly
	blob := EncodePublicKey(&h)

	short := blob[:PublicKeySize-1]
	if _, err := DecodePublicKey(short); !errors.Is(err, ErrBlobLength) {
		t.Fatalf("short blob: err = %v, want ErrBlobLength", err)
	}

	bad := blob
	bad[0] = 0x0A
	if _, err := DecodePublicKey(bad[:]); !errors.Is(err, ErrPublicKeyEncoding) {
		t.Fatalf("bad header: err = %v, want ErrPublicKeyEncoding", err)
	}

	// First 14-bit slot all ones: 16383 >= Q.
	bad = blob
	bad[1], bad[2] = 0xFF, 0xFF
	if _, err := DecodePublicKey(bad[:]); !errors.Is(err, ErrPublicKeyEncoding) {
		t.Fatalf("out-of-range coefficient: err = %v, want ErrPublicKeyEncoding", err)
	}
}

// smallPoly builds a polynomial with centered coefficients drawn from
// [-bound, bound].
func smallPoly(rng *rand.Rand, bound int) Poly {
	var p Poly
	for i := range p {
		v := rng.Intn(2*bound+1) - bound
		if v < 0 {
			p[i] = Neg(Elem(-v))
		} else {
			p[i] = Elem(v)
		}
	}
	return p
}

func sigBlob(nonce *[SigNonceLen]byte, stream *[SigPolySize]byte) [SignatureSize]byte {
	var blob [SignatureSize]byte
	blob[0] = SignatureHeader
	copy(blob[SigHeaderLen:], nonce[:])
	copy(blob[SigHeaderLen+SigNonceLen:], stream[:])
	return blob
}

func TestSignatureCodecRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var nonce [SigNonceLen]byte
	for iter := 0; iter < 10; iter++ {
		s := smallPoly(rng, 200)
		stream, err := CompressSignature(&s)
		if err != nil {
			t.Fatalf("CompressSignature: %v", err)
		}
		blob := sigBlob(&nonce, &stream)
		got, err := DecompressSignature(blob[:])
		if err != nil {
			t.Fatalf("DecompressSignature: %v", err)
		}
		if !got.Equal(&s) {
			t.Fatalf("signature codec roundtrip mismatch at iteration %d", iter)
		}
	}
}

func TestCompressRejectsOversizedCoefficient(t *testing.T) {
	var s Poly
	s[0] = Elem(maxMagnitude + 1)
	if _, err := CompressSignature(&s); !errors.Is(err, ErrSignatureEncoding) {
		t.Fatalf("err = %v, want ErrSignatureEncoding", err)
	}
}

func TestDecompressRejects(t *testing.T) {
	var nonce [SigNonceLen]byte
	var zero Poly
	stream, err := CompressSignature(&zero)
	if err != nil {
		t.Fatalf("CompressSignature: %v", err)
	}
	good := sigBlob(&nonce, &stream)

	t.Run("length", func(t *testing.T) {
		if _, err := DecompressSignature(good[:SignatureSize-1]); !errors.Is(err, ErrBlobLength) {
			t.Fatalf("err = %v, want ErrBlobLength", err)
		}
	})

	t.Run("header", func(t *testing.T) {
		bad := good
		bad[0] = 0x29
		if _, err := DecompressSignature(bad[:]); !errors.Is(err, ErrSignatureEncoding) {
			t.Fatalf("err = %v, want ErrSignatureEncoding", err)
		}
	})

	t.Run("negative zero", func(t *testing.T) {
		bad := good
		// First coefficient: sign bit set, magnitude zero.
		bad[SigHeaderLen+SigNonceLen] = 0x80
		if _, err := DecompressSignature(bad[:]); !errors.Is(err, ErrSignatureEncoding) {
			t.Fatalf("err = %v, want ErrSignatureEncoding", err)
		}
	})

	t.Run("magnitude overflow", func(t *testing.T) {
		bad := good
		// All-ones stream: an unterminated continuation run pushes the
		// first magnitude past the limit.
		for i := SigHeaderLen + SigNonceLen; i < SignatureSize; i++ {
			bad[i] = 0xFF
		}
		if _, err := DecompressSignature(bad[:]); !errors.Is(err, ErrSignatureEncoding) {
			t.Fatalf("err = %v, want ErrSignatureEncoding", err)
		}
	})

	t.Run("trailing bits", func(t *testing.T) {
		bad := good
		bad[SignatureSize-1] = 0x01
		if _, err := DecompressSignature(bad[:]); !errors.Is(err, ErrSignatureEncoding) {
			t.Fatalf("err = %v, want ErrSignatureEncoding", err)
		}
	})

	t.Run("stream overrun", func(t *testing.T) {
		// 16 bits per coefficient (magnitude 896) needs 1024 bytes for
		// 512 coefficients; the decoder must hit the end of the 625-byte
		// budget mid-stream, not read past it.
		bad := good
		for i := SigHeaderLen + SigNonceLen; i < SignatureSize; i += 2 {
			bad[i] = 0x00
			if i+1 < SignatureSize {
				bad[i+1] = 0xFE
			}
		}
		if _, err := DecompressSignature(bad[:]); !errors.Is(err, ErrSignatureEncoding) {
			t.Fatalf("err = %v, want ErrSignatureEncoding", err)
		}
	})

	t.Run("compress overrun", func(t *testing.T) {
		// Maximal magnitudes on every coefficient cannot fit the budget.
		var big Poly
		for i := range big {
			big[i] = Elem(maxMagnitude)
		}
		if _, err := CompressSignature(&big); !errors.Is(err, ErrSignatureEncoding) {
			t.Fatalf("err = %v, want ErrSignatureEncoding", err)
		}
	})
}
