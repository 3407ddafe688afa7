// Package xoodyak provides Xoodyak, the official Cyclist instantiation: a hash and a keyed mode
// built on the Xoodoo[12] permutation, offering ~128-bit security.
package xoodyak

import (
	"github.com/codahale/cyclist"
	"github.com/codahale/cyclist/hazmat/xoodoo"
)

const (
	hashRate = (384 - 256) / 8 // 16

	keyedAbsorbRate  = (384 - 32) / 8   // 44, b-W
	keyedSqueezeRate = (384 - 192) / 8  // 24, b-c
	ratchetRate      = 16
	tagLen           = 16
)

// Hash is Xoodyak in unkeyed hash mode.
type Hash struct {
	*cyclist.Hash
}

// NewHash returns a new Xoodyak Hash.
func NewHash() *Hash {
	return &Hash{cyclist.NewHash(xoodoo.New(xoodoo.MaxRounds), xoodoo.Width, hashRate)}
}

// Clone returns an independent copy of h.
func (h *Hash) Clone() *Hash {
	return &Hash{h.Hash.Clone()}
}

// Keyed is Xoodyak in keyed mode.
type Keyed struct {
	*cyclist.Keyed
}

// NewKeyed returns a new Xoodyak Keyed instance, initialized with key and optional keyID and
// counter.
func NewKeyed(key, keyID, counter []byte) *Keyed {
	return &Keyed{cyclist.NewKeyed(
		xoodoo.New(xoodoo.MaxRounds), xoodoo.Width,
		keyedAbsorbRate, keyedSqueezeRate, ratchetRate, tagLen,
		key, keyID, counter,
	)}
}

// Clone returns an independent copy of k.
func (k *Keyed) Clone() *Keyed {
	return &Keyed{k.Keyed.Clone()}
}
