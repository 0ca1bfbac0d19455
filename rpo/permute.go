package rpo

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Sponge geometry. The rate occupies state positions [RateStart, StateWidth)
// and the capacity the positions below RateStart.
const (
	StateWidth  = 12
	RateStart   = 4
	RateWidth   = StateWidth - RateStart
	DigestWidth = 4
	numRounds   = 7
)

// S-box exponents: x^7 and its inverse x^(1/7) = x^invAlpha over the field.
const (
	alpha    uint64 = 7
	invAlpha uint64 = 10540996611094048183
)

// Permutation is the single-operation capability consumed by sponge
// constructions: apply the fixed permutation to a full state in place.
type Permutation func(state *[StateWidth]Elem)

// mdsRow is the first row of the circulant MDS matrix.
var mdsRow = [StateWidth]uint64{7, 23, 8, 26, 13, 10, 9, 7, 6, 22, 21, 8}

var (
	mds  [StateWidth][StateWidth]Elem
	ark1 [numRounds][StateWidth]Elem
	ark2 [numRounds][StateWidth]Elem
)

func init() {
	for i := 0; i < StateWidth; i++ {
		for j := 0; j < StateWidth; j++ {
			mds[i][j] = NewElem(mdsRow[(j-i+StateWidth)%StateWidth])
		}
	}
	deriveConstants()
}

// deriveConstants fills ark1/ark2 following the Rescue Prime procedure:
// a SHAKE-256 stream seeded with the instance description, rejection-sampled
// into field elements.
func deriveConstants() {
	seed := fmt.Sprintf("RPO(%d,%d,%d,%d)", Modulus, StateWidth, RateStart, 128)
	h := sha3.NewShake256()
	h.Write([]byte(seed))
	var buf [8]byte
	next := func() Elem {
		for {
			h.Read(buf[:])
			v := binary.LittleEndian.Uint64(buf[:])
			if v < Modulus {
				return Elem(v)
			}
		}
	}
	for r := 0; r < numRounds; r++ {
		for i := 0; i < StateWidth; i++ {
			ark1[r][i] = next()
		}
		for i := 0; i < StateWidth; i++ {
			ark2[r][i] = next()
		}
	}
}

// Permute applies the 7-round RPO permutation to state in place.
func Permute(state *[StateWidth]Elem) {
	for r := 0; r < numRounds; r++ {
		applyMDS(state)
		addConstants(state, &ark1[r])
		applySBox(state)
		applyMDS(state)
		addConstants(state, &ark2[r])
		applyInvSBox(state)
	}
}

func applyMDS(state *[StateWidth]Elem) {
	var out [StateWidth]Elem
	for i := 0; i < StateWidth; i++ {
		var acc Elem
		for j := 0; j < StateWidth; j++ {
			acc = Add(acc, Mul(mds[i][j], state[j]))
		}
		out[i] = acc
	}
	*state = out
}

func addConstants(state, rc *[StateWidth]Elem) {
	for i := 0; i < StateWidth; i++ {
		state[i] = Add(state[i], rc[i])
	}
}

func applySBox(state *[StateWidth]Elem) {
	for i := 0; i < StateWidth; i++ {
		x := state[i]
		x2 := Mul(x, x)
		x4 := Mul(x2, x2)
		state[i] = Mul(Mul(x4, x2), x)
	}
}

func applyInvSBox(state *[StateWidth]Elem) {
	for i := 0; i < StateWidth; i++ {
		state[i] = Exp(state[i], invAlpha)
	}
}
