// Package cyclist implements the Cyclist mode of operation: a full-state keyed duplex
// construction providing hashing, extendable output, MAC, stream encryption, authenticated
// encryption, and key ratcheting from a single underlying permutation.
//
// Engine is the generic duplex state machine described by the Xoodyak specification. It is not
// used directly; callers construct a Hash or Keyed façade over a concrete permutation. The
// xoodyak and keccyak packages provide ready-made profiles.
package cyclist

import "github.com/codahale/cyclist/internal/mem"

// Permutation bijectively maps all states of a fixed width to other states of that width.
type Permutation interface {
	// Permute applies the permutation to state in place.
	Permute(state []byte)
}

// Domain separation bytes, fixed by the Cyclist specification.
const (
	dsAbsorb  = 0x03
	dsSqueeze = 0x40
	dsKey     = 0x20
	dsCrypt   = 0x80
	dsInitIV  = 0x02
	dsRatchet = 0x10
	dsNone    = 0x00
)

// Engine is the duplex object shared by the hash and keyed façades: a permutation state plus a
// phase flag recording whether the last transition was UP or DOWN.
//
// An Engine is single-owner: it is not safe to call its methods concurrently from two goroutines,
// though a quiescent Engine (between calls) may be handed off across goroutines freely.
type Engine struct {
	state       []byte
	isUp        bool
	keyed       bool
	absorbRate  int
	squeezeRate int
	perm        Permutation
}

// NewEngine returns a new, zeroed Engine for the given permutation, width, and rates.
//
// Panics if max(absorbRate, squeezeRate) + 2 > width: the engine needs at least one byte for
// DOWN's trailing padding byte and one for the domain-separated last byte, distinct from any
// rate byte.
func NewEngine(perm Permutation, width int, keyed bool, absorbRate, squeezeRate int) *Engine {
	if max(absorbRate, squeezeRate)+2 > width {
		panic("cyclist: rate too large for width")
	}
	return &Engine{
		state:       make([]byte, width),
		isUp:        true,
		keyed:       keyed,
		absorbRate:  absorbRate,
		squeezeRate: squeezeRate,
		perm:        perm,
	}
}

// up performs the duplex's UP transition: permute, then optionally extract output. When the
// engine is keyed, cu is XORed into the last state byte before permuting.
func (e *Engine) up(out []byte, cu byte) {
	if e.keyed {
		e.state[len(e.state)-1] ^= cu
	}
	e.perm.Permute(e.state)
	e.isUp = true
	if out != nil {
		copy(out, e.state)
	}
}

// down performs the duplex's DOWN transition: XOR an input block and its padding into the
// state's prefix. When the engine is unkeyed, cd is masked to its low bit before being XORed
// into the last state byte.
func (e *Engine) down(in []byte, cd byte) {
	if in != nil {
		mem.XORInPlace(e.state[:len(in)], in)
		e.state[len(in)] ^= 0x01
	} else {
		e.state[0] ^= 0x01
	}
	if !e.keyed {
		cd &= 0x01
	}
	e.state[len(e.state)-1] ^= cd
	e.isUp = false
}

// absorbAny absorbs bin in rate-sized chunks, applying cd to the first chunk and 0x00 to every
// continuation chunk. An empty bin yields a single empty chunk.
func (e *Engine) absorbAny(bin []byte, rate int, cd byte) {
	if !e.isUp {
		e.up(nil, dsNone)
	}

	first, rest := splitFirst(bin, rate)
	e.down(first, cd)
	for len(rest) > 0 {
		var chunk []byte
		chunk, rest = splitFirst(rest, rate)
		e.up(nil, dsNone)
		e.down(chunk, dsNone)
	}
}

// squeezeAny squeezes into out in rate-sized chunks, applying cu to the first chunk and 0x00 to
// every continuation chunk.
func (e *Engine) squeezeAny(out []byte, cu byte) {
	first, rest := splitFirst(out, e.squeezeRate)
	e.up(first, cu)
	for len(rest) > 0 {
		var chunk []byte
		chunk, rest = splitFirst(rest, e.squeezeRate)
		e.down(nil, dsNone)
		e.up(chunk, dsNone)
	}
}

// Absorb absorbs the given slice.
func (e *Engine) Absorb(bin []byte) {
	e.absorbAny(bin, e.absorbRate, dsAbsorb)
}

// AbsorbMore extends a previous Absorb with more data. The preceding Absorb's input length must
// be a multiple of the absorb rate for the two calls to be commutative with a single Absorb of
// the concatenation.
func (e *Engine) AbsorbMore(bin []byte) {
	for len(bin) > 0 {
		var chunk []byte
		chunk, bin = splitFirst(bin, e.absorbRate)
		e.up(nil, dsNone)
		e.down(chunk, dsNone)
	}
}

// SqueezeMut fills out with squeezed data.
func (e *Engine) SqueezeMut(out []byte) {
	e.squeezeAny(out, dsSqueeze)
}

// SqueezeMoreMut extends a previous Squeeze with more data. The preceding squeeze's output
// length must be a multiple of the squeeze rate for the two calls to be commutative with a
// single squeeze of the combined length.
func (e *Engine) SqueezeMoreMut(out []byte) {
	for len(out) > 0 {
		var chunk []byte
		chunk, out = splitFirst(out, e.squeezeRate)
		e.down(nil, dsNone)
		e.up(chunk, dsNone)
	}
}

// SqueezeKeyMut fills out with squeezed key-derivation data.
func (e *Engine) SqueezeKeyMut(out []byte) {
	e.squeezeAny(out, dsKey)
}

// Clear overwrites the engine's state with zeros. The engine must not be used afterward.
func (e *Engine) Clear() {
	clear(e.state)
}

// splitFirst splits bin into its first chunk of at most n bytes and the remainder. An empty bin
// returns an empty, non-nil first chunk and a nil remainder, so that absorbing an empty input
// still performs one DOWN transition.
func splitFirst(bin []byte, n int) (first, rest []byte) {
	if len(bin) <= n {
		if bin == nil {
			bin = []byte{}
		}
		return bin, nil
	}
	return bin[:n], bin[n:]
}
