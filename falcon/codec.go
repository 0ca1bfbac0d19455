package falcon

import "fmt"

// DecodePublicKey unpacks the public key polynomial h from its 897-byte
// blob: a fixed header byte followed by 512 coefficients at 14 bits each,
// most significant bits first.
func DecodePublicKey(blob []byte) (Poly, error) {
	var h Poly
	if len(blob) != PublicKeySize {
		return h, fmt.Errorf("%w: public key is %d bytes, want %d", ErrBlobLength, len(blob), PublicKeySize)
	}
	if blob[0] != PublicKeyHeader {
		return h, fmt.Errorf("%w: header byte 0x%02x, want 0x%02x", ErrPublicKeyEncoding, blob[0], PublicKeyHeader)
	}
	var acc uint32
	accLen := 0
	u := 0
	for _, b := range blob[1:] {
		acc = acc<<8 | uint32(b)
		accLen += 8
		for accLen >= 14 {
			accLen -= 14
			w := (acc >> uint(accLen)) & 0x3FFF
			if w >= Q {
				return Poly{}, fmt.Errorf("%w: coefficient %d out of range", ErrPublicKeyEncoding, u)
			}
			h[u] = Elem(w)
			u++
		}
	}
	// 512*14 bits fill the 896 payload bytes exactly.
	return h, nil
}

// EncodePublicKey packs h into the 897-byte public key blob, the exact
// inverse of DecodePublicKey.
func EncodePublicKey(h *Poly) [PublicKeySize]byte {
	var blob [PublicKeySize]byte
	blob[0] = PublicKeyHeader
	var acc uint32
	accLen := 0
	v := 1
	for _, c := range h {
		acc = acc<<14 | uint32(c)
		accLen += 14
		for accLen >= 8 {
			accLen -= 8
			blob[v] = byte(acc >> uint(accLen))
			v++
		}
	}
	return blob
}

// bitReader consumes a compressed stream most significant bit first.
type bitReader struct {
	buf    []byte
	pos    int
	acc    uint32
	accLen int
}

func (r *bitReader) bit() (uint32, bool) {
	if r.accLen == 0 {
		if r.pos >= len(r.buf) {
			return 0, false
		}
		r.acc = uint32(r.buf[r.pos])
		r.pos++
		r.accLen = 8
	}
	r.accLen--
	return (r.acc >> uint(r.accLen)) & 1, true
}

func (r *bitReader) bits(n int) (uint32, bool) {
	var v uint32
	for i := 0; i < n; i++ {
		b, ok := r.bit()
		if !ok {
			return 0, false
		}
		v = v<<1 | b
	}
	return v, true
}

// DecompressSignature decodes the s2 polynomial from the full 666-byte
// signature blob. Each coefficient is encoded as a sign bit, the 7 low
// magnitude bits, and a unary continuation: a run of 1-bits each worth 128,
// terminated by a 0-bit. The stream must fit the fixed budget exactly, with
// only zero bits after the last coefficient.
func DecompressSignature(blob []byte) (Poly, error) {
	var s Poly
	if len(blob) != SignatureSize {
		return s, fmt.Errorf("%w: signature is %d bytes, want %d", ErrBlobLength, len(blob), SignatureSize)
	}
	if blob[0] != SignatureHeader {
		return s, fmt.Errorf("%w: header byte 0x%02x, want 0x%02x", ErrSignatureEncoding, blob[0], SignatureHeader)
	}
	r := bitReader{buf: blob[SigHeaderLen+SigNonceLen:]}
	for u := 0; u < N; u++ {
		head, ok := r.bits(8)
		if !ok {
			return Poly{}, fmt.Errorf("%w: stream ends inside coefficient %d", ErrSignatureEncoding, u)
		}
		sign := head >> 7
		m := head & 0x7F
		for {
			b, ok := r.bit()
			if !ok {
				return Poly{}, fmt.Errorf("%w: stream ends inside coefficient %d", ErrSignatureEncoding, u)
			}
			if b == 0 {
				break
			}
			m += 128
			if m > maxMagnitude {
				return Poly{}, fmt.Errorf("%w: coefficient %d magnitude overflow", ErrSignatureEncoding, u)
			}
		}
		if sign == 1 && m == 0 {
			return Poly{}, fmt.Errorf("%w: negative zero at coefficient %d", ErrSignatureEncoding, u)
		}
		if sign == 1 {
			s[u] = Neg(Elem(m))
		} else {
			s[u] = Elem(m)
		}
	}
	// Whatever padding remains must be all-zero bits.
	if r.acc&((1<<uint(r.accLen))-1) != 0 {
		return Poly{}, fmt.Errorf("%w: nonzero trailing bits", ErrSignatureEncoding)
	}
	for _, b := range r.buf[r.pos:] {
		if b != 0 {
			return Poly{}, fmt.Errorf("%w: nonzero trailing bytes", ErrSignatureEncoding)
		}
	}
	return s, nil
}

// CompressSignature encodes s2 into the fixed 625-byte compressed stream,
// the exact inverse of DecompressSignature. It fails if a centered
// coefficient exceeds the codec's magnitude limit or the encoding does not
// fit the budget.
func CompressSignature(s *Poly) ([SigPolySize]byte, error) {
	var out [SigPolySize]byte
	var acc uint32
	accLen := 0
	v := 0
	emit := func(val uint32, n int) bool {
		acc = acc<<uint(n) | val
		accLen += n
		for accLen >= 8 {
			accLen -= 8
			if v >= SigPolySize {
				return false
			}
			out[v] = byte(acc >> uint(accLen))
			v++
		}
		return true
	}
	for u, c := range s {
		m := Center(c)
		sign := uint32(0)
		if m < 0 {
			sign = 1
			m = -m
		}
		if m > maxMagnitude {
			return out, fmt.Errorf("%w: coefficient %d magnitude %d exceeds codec range", ErrSignatureEncoding, u, m)
		}
		if sign == 1 && m == 0 {
			return out, fmt.Errorf("%w: negative zero at coefficient %d", ErrSignatureEncoding, u)
		}
		high := uint32(m) >> 7
		ok := emit(sign, 1) &&
			emit(uint32(m)&0x7F, 7) &&
			emit((1<<(high+1))-2, int(high)+1) // high ones, then the 0 terminator
		if !ok {
			return out, fmt.Errorf("%w: encoding exceeds %d bytes", ErrSignatureEncoding, SigPolySize)
		}
	}
	if accLen > 0 {
		if !emit(0, 8-accLen%8) {
			return out, fmt.Errorf("%w: encoding exceeds %d bytes", ErrSignatureEncoding, SigPolySize)
		}
	}
	return out, nil
}
