// Package xoodoo implements the Xoodoo-p permutation family: a 48-byte-wide, 12-lane
// bijection parameterized by round count.
package xoodoo

import "encoding/binary"

// Width is the permutation's state size in bytes (12 little-endian 32-bit lanes).
const Width = 48

// MaxRounds is the full Xoodoo round count.
const MaxRounds = 12

// roundKeys are the round constants for a full, 12-round Xoodoo permutation. A reduced-round
// permutation uses the last R entries.
var roundKeys = [MaxRounds]uint32{
	0x058, 0x038, 0x3C0, 0x0D0, 0x120, 0x014, 0x060, 0x02C, 0x380, 0x0F0, 0x1A0, 0x012,
}

// Permutation applies Rounds rounds of Xoodoo-p to a 48-byte state.
type Permutation struct {
	Rounds int
}

// New returns a Permutation with the given round count. Rounds must be in [1, MaxRounds].
func New(rounds int) Permutation {
	if rounds < 1 || rounds > MaxRounds {
		panic("xoodoo: rounds out of range")
	}
	return Permutation{Rounds: rounds}
}

// Permute applies p.Rounds rounds of Xoodoo-p to state, which must be Width bytes.
func (p Permutation) Permute(state []byte) {
	if len(state) != Width {
		panic("xoodoo: state must be 48 bytes")
	}

	var st [12]uint32
	for i := range st {
		st[i] = binary.LittleEndian.Uint32(state[4*i:])
	}

	for _, rk := range roundKeys[MaxRounds-p.Rounds:] {
		round(&st, rk)
	}

	for i, w := range st {
		binary.LittleEndian.PutUint32(state[4*i:], w)
	}
}

// round applies one Xoodoo round (θ, then the fused ρ_west/ι/χ/ρ_east step) with the given
// round key.
func round(st *[12]uint32, roundKey uint32) {
	p0 := st[0] ^ st[4] ^ st[8]
	p1 := st[1] ^ st[5] ^ st[9]
	p2 := st[2] ^ st[6] ^ st[10]
	p3 := st[3] ^ st[7] ^ st[11]

	e0 := rotl32(p3, 5) ^ rotl32(p3, 14)
	e1 := rotl32(p0, 5) ^ rotl32(p0, 14)
	e2 := rotl32(p1, 5) ^ rotl32(p1, 14)
	e3 := rotl32(p2, 5) ^ rotl32(p2, 14)

	var tmp [12]uint32
	tmp[0] = e0 ^ st[0] ^ roundKey
	tmp[1] = e1 ^ st[1]
	tmp[2] = e2 ^ st[2]
	tmp[3] = e3 ^ st[3]

	tmp[4] = e3 ^ st[7]
	tmp[5] = e0 ^ st[4]
	tmp[6] = e1 ^ st[5]
	tmp[7] = e2 ^ st[6]

	tmp[8] = rotl32(e0^st[8], 11)
	tmp[9] = rotl32(e1^st[9], 11)
	tmp[10] = rotl32(e2^st[10], 11)
	tmp[11] = rotl32(e3^st[11], 11)

	st[0] = (^tmp[4] & tmp[8]) ^ tmp[0]
	st[1] = (^tmp[5] & tmp[9]) ^ tmp[1]
	st[2] = (^tmp[6] & tmp[10]) ^ tmp[2]
	st[3] = (^tmp[7] & tmp[11]) ^ tmp[3]

	st[4] = rotl32((^tmp[8]&tmp[0])^tmp[4], 1)
	st[5] = rotl32((^tmp[9]&tmp[1])^tmp[5], 1)
	st[6] = rotl32((^tmp[10]&tmp[2])^tmp[6], 1)
	st[7] = rotl32((^tmp[11]&tmp[3])^tmp[7], 1)

	st[8] = rotl32((^tmp[2]&tmp[6])^tmp[10], 8)
	st[9] = rotl32((^tmp[3]&tmp[7])^tmp[11], 8)
	st[10] = rotl32((^tmp[0]&tmp[4])^tmp[8], 8)
	st[11] = rotl32((^tmp[1]&tmp[5])^tmp[9], 8)
}

func rotl32(x uint32, n int) uint32 {
	return x<<n | x>>(32-n)
}
