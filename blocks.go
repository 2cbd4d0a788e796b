package stegopix

import (
	"bytes"
	"fmt"
	"math/big"
	"unicode/utf8"
)

// BlockSize returns the smallest block width in bytes, b ≥ 1, whose maximum
// representable value 2^(8(b+1))-1 is at least n. Plaintext blocks of this
// width always map to integers the modulus can bound during exponentiation.
func BlockSize(n *big.Int) int {
	b := 1

	for {
		max := new(big.Int).Lsh(one, uint(8*(b+1)))
		max.Sub(max, one)

		if max.Cmp(n) >= 0 {
			return b
		}

		b++
	}
}

// textToBlocks encodes text as UTF-8, zero-pads it to a multiple of b bytes,
// and splits it into b-byte big-endian integers.
func textToBlocks(text string, b int) []*big.Int {
	buf := []byte(text)
	if pad := (b - len(buf)%b) % b; pad > 0 {
		buf = append(buf, make([]byte, pad)...)
	}

	blocks := make([]*big.Int, 0, len(buf)/b)
	for i := 0; i < len(buf); i += b {
		blocks = append(blocks, new(big.Int).SetBytes(buf[i:i+b]))
	}

	return blocks
}

// blocksToText re-encodes each block as a b-byte big-endian value, truncates
// the concatenation at the first NUL, and decodes it as UTF-8. A block that
// does not fit in b bytes returns ErrBlockOverflow; a result that is not
// valid UTF-8 returns ErrDecode. Both are the usual symptom of decrypting
// with a mismatched key.
func blocksToText(blocks []*big.Int, b int) (string, error) {
	buf := make([]byte, 0, len(blocks)*b)

	for _, block := range blocks {
		if block.BitLen() > 8*b {
			return "", fmt.Errorf("%w: %d bits in a %d-byte block", ErrBlockOverflow, block.BitLen(), b)
		}

		buf = append(buf, block.FillBytes(make([]byte, b))...)
	}

	// NUL is the end-of-text marker introduced by padding.
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	if !utf8.Valid(buf) {
		return "", ErrDecode
	}

	return string(buf), nil
}
