package xoodyak_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/codahale/cyclist/xoodyak"
)

func TestHashSupercopVector(t *testing.T) {
	// From the XKCP Xoodyak_hash SUPERCOP round-3 selftest.
	message := []byte{0x11, 0x97, 0x13, 0xCC, 0x83, 0xEE, 0xEF}
	want := decodeHex(t, "999d5865b0dd9fa30973365fecf041778d0449a1b0c55b7436608 31a7d5025ee")

	h := xoodyak.NewHash()
	h.Absorb(message)
	if got := h.Squeeze(32); !bytes.Equal(got, want) {
		t.Errorf("squeeze = %x, want %x", got, want)
	}
}

func TestHashExampleMessage(t *testing.T) {
	want := decodeHex(t, "184F393185 39E4DE0B5F91394C10107A")

	h := xoodyak.NewHash()
	h.Absorb([]byte("This is an input message!"))
	if got := h.Squeeze(16); !bytes.Equal(got, want) {
		t.Errorf("squeeze = %x, want %x", got, want)
	}
}

func TestKeyedMAC(t *testing.T) {
	want := decodeHex(t, "C2A656504A3EAC737A6BBAD5FC52EFBA")

	k := xoodyak.NewKeyed([]byte("This is a secret key!"), nil, nil)
	k.Absorb([]byte("This is an input message!"))
	if got := k.Squeeze(16); !bytes.Equal(got, want) {
		t.Errorf("squeeze = %x, want %x", got, want)
	}
}

func TestKeyedAEADExample(t *testing.T) {
	wantPrefix := decodeHex(t, "64B69831DB94207C11229FA9")

	k := xoodyak.NewKeyed([]byte("This is a secret key!"), []byte("This is a nonce!"), nil)
	k.Absorb([]byte("This is authenticated data!"))
	ciphertext := k.Seal([]byte("This is the plaintext!"))

	if len(ciphertext) != len("This is the plaintext!")+16 {
		t.Fatalf("ciphertext length = %d", len(ciphertext))
	}
	if got := ciphertext[:len(wantPrefix)]; !bytes.Equal(got, wantPrefix) {
		t.Errorf("ciphertext prefix = %x, want %x", got, wantPrefix)
	}
}

func TestKeyedAEADTamperDetection(t *testing.T) {
	k := xoodyak.NewKeyed([]byte("This is a secret key!"), []byte("This is a nonce!"), nil)
	k.Absorb([]byte("This is authenticated data!"))
	ciphertext := k.Seal([]byte("This is the plaintext!"))

	ciphertext[len(ciphertext)-1] ^= 0x01

	k2 := xoodyak.NewKeyed([]byte("This is a secret key!"), []byte("This is a nonce!"), nil)
	k2.Absorb([]byte("This is authenticated data!"))

	buf := append([]byte(nil), ciphertext...)
	if k2.OpenMut(buf) {
		t.Fatal("OpenMut succeeded on tampered ciphertext")
	}

	ct := buf[:len(buf)-k2.TagLen()]
	for i, b := range ct {
		if b != 0 {
			t.Fatalf("ciphertext region not zeroed at offset %d: %x", i, ct)
		}
	}
}

func TestSupercopAEADRound3Vector(t *testing.T) {
	key := decodeHex(t, "5a4b3c2d1e0f00f1e2d3c4b5a6978879")
	keyID := decodeHex(t, "6b4c2d0eefd0b19272533415f6d7b899")
	ad := decodeHex(t, "32f3b47535f6")
	plaintext := decodeHex(t, "e465e566e667e7")
	want := decodeHex(t, "6e68081c7eacbf72e2a677a60e442748d7a86e788eb9d4")

	k := xoodyak.NewKeyed(key, keyID, nil)
	k.Absorb(ad)
	ciphertext := k.Seal(plaintext)
	if !bytes.Equal(ciphertext, want) {
		t.Errorf("seal = %x, want %x", ciphertext, want)
	}

	k2 := xoodyak.NewKeyed(key, keyID, nil)
	k2.Absorb(ad)
	opened, err := k2.Open(ciphertext)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("open = %x, want %x", opened, plaintext)
	}
}

func TestInteropVector(t *testing.T) {
	// From rust-xoodyak's interop test suite.
	keyID := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	want := decodeHex(t, "0C5B0078BFD677427AE1B8EFD5D6F739")

	k := xoodyak.NewKeyed([]byte("key"), keyID, nil)
	k.Absorb([]byte("ad"))
	k.Encrypt([]byte("message"))
	if got := k.Squeeze(16); !bytes.Equal(got, want) {
		t.Errorf("squeeze = %x, want %x", got, want)
	}
}

func TestKeyedRoundTrip(t *testing.T) {
	k := xoodyak.NewKeyed([]byte("ok then"), nil, nil)
	ciphertext := k.Seal([]byte("it's a deal"))

	k2 := xoodyak.NewKeyed([]byte("ok then"), nil, nil)
	plaintext, err := k2.Open(ciphertext)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if got := string(plaintext); got != "it's a deal" {
		t.Errorf("plaintext = %q", got)
	}
}

func TestRatchetDesyncsDecryption(t *testing.T) {
	base := xoodyak.NewKeyed([]byte("key"), nil, nil)
	message := []byte("message")

	ciphertext := append([]byte(nil), message...)
	base.Clone().EncryptMut(ciphertext)

	ratcheted := base.Clone()
	ratcheted.Ratchet()
	decrypted := append([]byte(nil), ciphertext...)
	ratcheted.DecryptMut(decrypted)

	if bytes.Equal(decrypted, message) {
		t.Fatal("ratcheted decryption unexpectedly matched plaintext")
	}
}

func TestAbsorbMoreCommutesWithAbsorb(t *testing.T) {
	rate := 16 // hashRate
	prefix := bytes.Repeat([]byte{20}, rate*3)
	suffix := bytes.Repeat([]byte{39}, 17)

	one := xoodyak.NewHash()
	one.Absorb(append(append([]byte(nil), prefix...), suffix...))

	two := xoodyak.NewHash()
	two.Absorb(prefix)
	two.AbsorbMore(suffix)

	if got, want := one.Squeeze(10), two.Squeeze(10); !bytes.Equal(got, want) {
		t.Errorf("squeeze after absorb = %x, want %x (absorb_more)", got, want)
	}
}

func TestSqueezeMoreCommutesWithSqueeze(t *testing.T) {
	one := xoodyak.NewHash()
	want := one.Squeeze(16*3 + 17)

	two := xoodyak.NewHash()
	got := two.Squeeze(16 * 3)
	got = append(got, two.SqueezeMore(17)...)

	if !bytes.Equal(got, want) {
		t.Errorf("squeeze_more result = %x, want %x", got, want)
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	s = removeSpaces(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func removeSpaces(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
