// Package keccak implements the Keccak-p[1600] permutation family: a 200-byte-wide, 25-lane
// bijection parameterized by round count.
//
// No SIMD or assembly backend is provided; the permutation operates on a byte array throughout,
// converting to and from little-endian lanes at its boundaries rather than aliasing the state.
package keccak

import "encoding/binary"

// Width is the permutation's state size in bytes (25 little-endian 64-bit lanes).
const Width = 200

// MaxRounds is the full Keccak-f[1600] round count.
const MaxRounds = 24

// roundConstants are the ι round constants for a full, 24-round Keccak-f[1600] permutation. A
// reduced-round permutation uses the last R entries, per the K12/M14 convention.
var roundConstants = [MaxRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho is the per-lane rotation offset applied during the combined ρ/π step, indexed by the
// position in the π traversal order below.
var rho = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// pi is the lane index visited at each step of the combined ρ/π step.
var pi = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// Permutation applies Rounds rounds of Keccak-p[1600] to a 200-byte state.
type Permutation struct {
	Rounds int
}

// New returns a Permutation with the given round count. Rounds must be in [1, MaxRounds].
func New(rounds int) Permutation {
	if rounds < 1 || rounds > MaxRounds {
		panic("keccak: rounds out of range")
	}
	return Permutation{Rounds: rounds}
}

// Permute applies p.Rounds rounds of Keccak-p[1600] to state, which must be Width bytes.
func (p Permutation) Permute(state []byte) {
	if len(state) != Width {
		panic("keccak: state must be 200 bytes")
	}

	var lanes [25]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(state[8*i:])
	}

	f1600(&lanes, p.Rounds)

	for i, l := range lanes {
		binary.LittleEndian.PutUint64(state[8*i:], l)
	}
}

// f1600 applies the last rounds entries of roundConstants to lanes.
func f1600(lanes *[25]uint64, rounds int) {
	var c [5]uint64

	for _, rc := range roundConstants[MaxRounds-rounds:] {
		// θ
		for x := range 5 {
			c[x] = lanes[x] ^ lanes[x+5] ^ lanes[x+10] ^ lanes[x+15] ^ lanes[x+20]
		}
		for x := range 5 {
			d := c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				lanes[x+y] ^= d
			}
		}

		// ρ and π
		a := lanes[1]
		for i := range 24 {
			t := lanes[pi[i]]
			lanes[pi[i]] = rotl64(a, rho[i])
			a = t
		}

		// χ
		for y := 0; y < 25; y += 5 {
			var row [5]uint64
			copy(row[:], lanes[y:y+5])
			for x := range 5 {
				lanes[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// ι
		lanes[0] ^= rc
	}
}

func rotl64(x uint64, n uint) uint64 {
	return x<<n | x>>(64-n)
}
