// Package keccyak provides the Keccyak family of Cyclist instantiations: hash and keyed modes
// built on the Keccak-p[1600] permutation at four round counts, trading conservatism for speed.
//
// Parameters follow the Motorist construction's sponge and fully-keyed-sponge security arguments:
// hash rate is b-2k for k bits of security, keyed absorb rate is b-W for W of 64 or 32 bits, and
// keyed squeeze rate is b-c for capacity c. None of these profiles are a published or
// standardized configuration; they carry no official security analysis.
package keccyak

import (
	"github.com/codahale/cyclist"
	"github.com/codahale/cyclist/hazmat/keccak"
)

const (
	maxHashRate  = (1600 - 512) / 8 // 136, ~256-bit security
	maxAbsorb    = (1600 - 64) / 8  // 192, R_absorb=b-W, W=64
	maxSqueeze   = (1600 - 256) / 8 // 168, R_squeeze=b-c
	maxRatchet   = 32
	maxTagLen    = 32

	smallHashRate = (1600 - 256) / 8 // 168, ~128-bit security
	smallAbsorb   = (1600 - 32) / 8  // 196, R_absorb=b-W, W=32
	smallSqueeze  = (1600 - 192) / 8 // 176, R_squeeze=b-c
	smallRatchet  = 16
	smallTagLen   = 16
)

// MaxHash is a Cyclist hash using the full, unreduced Keccak-f[1600] permutation: a very
// conservative design offering ~256-bit security.
type MaxHash struct {
	*cyclist.Hash
}

// NewMaxHash returns a new MaxHash.
func NewMaxHash() *MaxHash {
	return &MaxHash{cyclist.NewHash(keccak.New(keccak.MaxRounds), keccak.Width, maxHashRate)}
}

// Clone returns an independent copy of h.
func (h *MaxHash) Clone() *MaxHash {
	return &MaxHash{h.Hash.Clone()}
}

// MaxKeyed is a keyed Cyclist using the full, unreduced Keccak-f[1600] permutation: a very
// conservative design offering ~256-bit security.
type MaxKeyed struct {
	*cyclist.Keyed
}

// NewMaxKeyed returns a new MaxKeyed instance, initialized with key and optional keyID and
// counter.
func NewMaxKeyed(key, keyID, counter []byte) *MaxKeyed {
	return &MaxKeyed{cyclist.NewKeyed(
		keccak.New(keccak.MaxRounds), keccak.Width,
		maxAbsorb, maxSqueeze, maxRatchet, maxTagLen,
		key, keyID, counter,
	)}
}

// Clone returns an independent copy of k.
func (k *MaxKeyed) Clone() *MaxKeyed {
	return &MaxKeyed{k.Keyed.Clone()}
}

// Rounds256 is the round count for the Keccyak-256 profiles (Keccak-p[1600,14]).
const Rounds256 = 14

// Hash256 is a Cyclist hash using Keccak-p[1600,14], a performance-oriented design offering
// ~256-bit security.
type Hash256 struct {
	*cyclist.Hash
}

// NewHash256 returns a new Hash256.
func NewHash256() *Hash256 {
	return &Hash256{cyclist.NewHash(keccak.New(Rounds256), keccak.Width, maxHashRate)}
}

// Clone returns an independent copy of h.
func (h *Hash256) Clone() *Hash256 {
	return &Hash256{h.Hash.Clone()}
}

// Keyed256 is a keyed Cyclist using Keccak-p[1600,14], a performance-oriented design offering
// ~256-bit security.
type Keyed256 struct {
	*cyclist.Keyed
}

// NewKeyed256 returns a new Keyed256 instance, initialized with key and optional keyID and
// counter.
func NewKeyed256(key, keyID, counter []byte) *Keyed256 {
	return &Keyed256{cyclist.NewKeyed(
		keccak.New(Rounds256), keccak.Width,
		maxAbsorb, maxSqueeze, maxRatchet, maxTagLen,
		key, keyID, counter,
	)}
}

// Clone returns an independent copy of k.
func (k *Keyed256) Clone() *Keyed256 {
	return &Keyed256{k.Keyed.Clone()}
}

// Rounds128 is the round count for the Keccyak-128 profiles (Keccak-p[1600,12]), the permutation
// also used by KangarooTwelve.
const Rounds128 = 12

// Hash128 is a Cyclist hash using Keccak-p[1600,12], a performance-oriented design offering
// ~128-bit security.
type Hash128 struct {
	*cyclist.Hash
}

// NewHash128 returns a new Hash128.
func NewHash128() *Hash128 {
	return &Hash128{cyclist.NewHash(keccak.New(Rounds128), keccak.Width, smallHashRate)}
}

// Clone returns an independent copy of h.
func (h *Hash128) Clone() *Hash128 {
	return &Hash128{h.Hash.Clone()}
}

// Keyed128 is a keyed Cyclist using Keccak-p[1600,12], a performance-oriented design offering
// ~128-bit security.
type Keyed128 struct {
	*cyclist.Keyed
}

// NewKeyed128 returns a new Keyed128 instance, initialized with key and optional keyID and
// counter.
func NewKeyed128(key, keyID, counter []byte) *Keyed128 {
	return &Keyed128{cyclist.NewKeyed(
		keccak.New(Rounds128), keccak.Width,
		smallAbsorb, smallSqueeze, smallRatchet, smallTagLen,
		key, keyID, counter,
	)}
}

// Clone returns an independent copy of k.
func (k *Keyed128) Clone() *Keyed128 {
	return &Keyed128{k.Keyed.Clone()}
}

// RoundsMin is the round count for the KeccyakMin profiles (Keccak-p[1600,10], aka "KitTen").
//
// This is not a published Cyclist configuration. It has no official security analysis and no
// external test vectors; it exists for experimentation with very aggressively reduced-round
// permutations.
const RoundsMin = 10

// MinHash is a Cyclist hash using Keccak-p[1600,10] ("KitTen"), a very performance-oriented,
// experimental design offering ~128-bit security.
type MinHash struct {
	*cyclist.Hash
}

// NewMinHash returns a new MinHash.
func NewMinHash() *MinHash {
	return &MinHash{cyclist.NewHash(keccak.New(RoundsMin), keccak.Width, smallHashRate)}
}

// Clone returns an independent copy of h.
func (h *MinHash) Clone() *MinHash {
	return &MinHash{h.Hash.Clone()}
}

// MinKeyed is a keyed Cyclist using Keccak-p[1600,10] ("KitTen"), a very performance-oriented,
// experimental design offering ~128-bit security.
type MinKeyed struct {
	*cyclist.Keyed
}

// NewMinKeyed returns a new MinKeyed instance, initialized with key and optional keyID and
// counter.
func NewMinKeyed(key, keyID, counter []byte) *MinKeyed {
	return &MinKeyed{cyclist.NewKeyed(
		keccak.New(RoundsMin), keccak.Width,
		smallAbsorb, smallSqueeze, smallRatchet, smallTagLen,
		key, keyID, counter,
	)}
}

// Clone returns an independent copy of k.
func (k *MinKeyed) Clone() *MinKeyed {
	return &MinKeyed{k.Keyed.Clone()}
}
