package rpo

// Word is a 4-element digest, the output width of the sponge.
type Word [DigestWidth]Elem

// HashElements absorbs elems through the sponge and returns the digest.
// When the input length is not a multiple of the rate, the input is padded
// with a single 1 element and the first capacity register is set to 1 so
// padded and unpadded inputs of equal absorbed length cannot collide.
// Empty input absorbs a single padding block.
func HashElements(elems []Elem) Word {
	var state [StateWidth]Elem
	pad := len(elems)%RateWidth != 0 || len(elems) == 0
	if pad {
		state[0] = 1
	}

	pos := 0
	for _, e := range elems {
		state[RateStart+pos] = e
		pos++
		if pos == RateWidth {
			Permute(&state)
			pos = 0
		}
	}
	if pad {
		state[RateStart+pos] = 1
		for i := pos + 1; i < RateWidth; i++ {
			state[RateStart+i] = 0
		}
		Permute(&state)
	}

	var d Word
	copy(d[:], state[RateStart:RateStart+DigestWidth])
	return d
}
