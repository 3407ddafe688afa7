package cyclist

import (
	"crypto/subtle"
	"errors"

	"github.com/codahale/cyclist/internal/mem"
)

// ErrInvalidCiphertext is returned by Keyed.Open when tag verification fails. Keyed.Open works on
// a copy of its input, so the caller's buffer is left unchanged; the copy's ciphertext region is
// zeroed (as OpenMut does) before this error is returned.
var ErrInvalidCiphertext = errors.New("cyclist: authentication failed")

// Keyed is a Cyclist object in keyed mode: absorb, squeeze, encrypt, decrypt, ratchet, seal, and
// open, all bound to a secret key established at construction.
type Keyed struct {
	e           *Engine
	ratchetRate int
	tagLen      int
}

// NewKeyed returns a new Keyed using perm, a width-byte state, the given absorb/squeeze/ratchet
// rates and tag length, initialized with key, an optional key ID, and an optional counter.
//
// Panics if len(key) + len(keyID) + 1 > absorbRate: the combined key material must fit in a
// single absorb block alongside its length byte.
func NewKeyed(perm Permutation, width, absorbRate, squeezeRate, ratchetRate, tagLen int, key, keyID, counter []byte) *Keyed {
	if len(key)+len(keyID)+1 > absorbRate {
		panic("cyclist: combined key and key ID too long for absorb rate")
	}

	e := NewEngine(perm, width, true, absorbRate, squeezeRate)

	iv := make([]byte, len(key)+len(keyID)+1)
	n := copy(iv, key)
	n += copy(iv[n:], keyID)
	iv[n] = byte(len(keyID))
	e.absorbAny(iv, absorbRate, dsInitIV)
	clear(iv)

	if len(counter) > 0 {
		e.absorbAny(counter, 1, dsNone)
	}

	return &Keyed{e: e, ratchetRate: ratchetRate, tagLen: tagLen}
}

// Absorb absorbs the given slice.
func (k *Keyed) Absorb(bin []byte) {
	k.e.Absorb(bin)
}

// AbsorbMore extends a previous Absorb with more data. See Engine.AbsorbMore.
func (k *Keyed) AbsorbMore(bin []byte) {
	k.e.AbsorbMore(bin)
}

// SqueezeMut fills out with squeezed data.
func (k *Keyed) SqueezeMut(out []byte) {
	k.e.SqueezeMut(out)
}

// Squeeze returns n bytes of squeezed data.
func (k *Keyed) Squeeze(n int) []byte {
	out := make([]byte, n)
	k.e.SqueezeMut(out)
	return out
}

// SqueezeMoreMut extends a previous squeeze with more data. See Engine.SqueezeMoreMut.
func (k *Keyed) SqueezeMoreMut(out []byte) {
	k.e.SqueezeMoreMut(out)
}

// SqueezeMore extends a previous squeeze with n more bytes of squeezed data.
func (k *Keyed) SqueezeMore(n int) []byte {
	out := make([]byte, n)
	k.e.SqueezeMoreMut(out)
	return out
}

// SqueezeKeyMut fills out with squeezed key-derivation data.
func (k *Keyed) SqueezeKeyMut(out []byte) {
	k.e.SqueezeKeyMut(out)
}

// SqueezeKey returns n bytes of squeezed key-derivation data.
func (k *Keyed) SqueezeKey(n int) []byte {
	out := make([]byte, n)
	k.e.SqueezeKeyMut(out)
	return out
}

// EncryptMut encrypts buf in place.
func (k *Keyed) EncryptMut(buf []byte) {
	tmp := make([]byte, k.e.squeezeRate)
	cu := byte(dsCrypt)

	for len(buf) > 0 {
		n := min(len(buf), k.e.squeezeRate)
		plaintext := buf[:n]

		k.e.up(tmp[:n], cu)
		cu = dsNone

		k.e.down(plaintext, dsNone)

		for i, t := range tmp[:n] {
			plaintext[i] ^= t
		}

		buf = buf[n:]
	}

	clear(tmp)
}

// Encrypt returns an encrypted copy of bin.
func (k *Keyed) Encrypt(bin []byte) []byte {
	_, out := mem.SliceForAppend(nil, len(bin))
	copy(out, bin)
	k.EncryptMut(out)
	return out
}

// DecryptMut decrypts buf in place.
func (k *Keyed) DecryptMut(buf []byte) {
	tmp := make([]byte, k.e.squeezeRate)
	cu := byte(dsCrypt)

	for len(buf) > 0 {
		n := min(len(buf), k.e.squeezeRate)
		ciphertext := buf[:n]

		k.e.up(tmp[:n], cu)
		cu = dsNone

		for i, t := range tmp[:n] {
			ciphertext[i] ^= t
		}

		k.e.down(ciphertext, dsNone)

		buf = buf[n:]
	}

	clear(tmp)
}

// Decrypt returns a decrypted copy of bin.
func (k *Keyed) Decrypt(bin []byte) []byte {
	_, out := mem.SliceForAppend(nil, len(bin))
	copy(out, bin)
	k.DecryptMut(out)
	return out
}

// Ratchet irreversibly advances the keyed state for forward secrecy.
func (k *Keyed) Ratchet() {
	rolled := make([]byte, k.ratchetRate)
	k.e.squeezeAny(rolled, dsRatchet)
	k.e.absorbAny(rolled, k.ratchetRate, dsNone)
	clear(rolled)
}

// SealMut encrypts and authenticates buf[:len(buf)-TagLen] in place, writing the tag into the
// last TagLen bytes.
//
// Panics if len(buf) < k.TagLen().
func (k *Keyed) SealMut(buf []byte) {
	plaintext, tag := k.splitTag(buf)
	k.EncryptMut(plaintext)
	k.SqueezeMut(tag)
}

// Seal returns bin encrypted and authenticated, with a TagLen-byte tag appended.
func (k *Keyed) Seal(bin []byte) []byte {
	head, tail := mem.SliceForAppend(nil, len(bin))
	copy(tail, bin)
	head, _ = mem.SliceForAppend(head, k.tagLen)
	k.SealMut(head)
	return head
}

// OpenMut decrypts and authenticates buf[:len(buf)-TagLen] in place against the tag in its last
// TagLen bytes, returning true if authentic.
//
// On failure, the ciphertext region of buf (everything but the tag) is zeroed and false is
// returned, so that a caller who ignores the return value cannot observe forged plaintext.
//
// Panics if len(buf) < k.TagLen().
func (k *Keyed) OpenMut(buf []byte) bool {
	ciphertext, tag := k.splitTag(buf)
	k.DecryptMut(ciphertext)

	expected := make([]byte, k.tagLen)
	k.SqueezeMut(expected)

	if subtle.ConstantTimeCompare(tag, expected) == 1 {
		return true
	}

	clear(ciphertext)
	return false
}

// Open returns bin decrypted and authenticated, or ErrInvalidCiphertext if it fails
// authentication.
//
// Panics if len(bin) < k.TagLen(), the same precondition OpenMut enforces.
func (k *Keyed) Open(bin []byte) ([]byte, error) {
	_, out := mem.SliceForAppend(nil, len(bin))
	copy(out, bin)
	if !k.OpenMut(out) {
		return nil, ErrInvalidCiphertext
	}
	return out[:len(out)-k.tagLen], nil
}

// TagLen returns the length, in bytes, of an authentication tag.
func (k *Keyed) TagLen() int {
	return k.tagLen
}

// Clone returns an independent copy of k. The original and the clone evolve independently.
func (k *Keyed) Clone() *Keyed {
	e := *k.e
	e.state = append([]byte(nil), k.e.state...)
	return &Keyed{e: &e, ratchetRate: k.ratchetRate, tagLen: k.tagLen}
}

// Clear overwrites k's state with zeros. k must not be used afterward.
func (k *Keyed) Clear() {
	k.e.Clear()
}

func (k *Keyed) splitTag(buf []byte) (body, tag []byte) {
	if len(buf) < k.tagLen {
		panic("cyclist: buffer shorter than tag length")
	}
	return buf[:len(buf)-k.tagLen], buf[len(buf)-k.tagLen:]
}
