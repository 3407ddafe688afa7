// Package mem provides small byte-slice helpers shared by the engine and the keyed façade.
//
// No SIMD or architecture-specific variants are provided: the engine calls these once per
// rate-sized chunk, where the cost is dominated by the permutation itself, not the XOR loop.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i in src.
func XORInPlace(dst, src []byte) {
	for i, s := range src {
		dst[i] ^= s
	}
}

// SliceForAppend takes a slice and a requested number of bytes to append. It returns the
// resulting slice along with a slice of the newly appended bytes, similar in spirit to
// append(in, make([]byte, n)...), but without unnecessary zeroing when in has enough capacity.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
