package stegopix

import (
	"bytes"
	"fmt"
	"math/big"
)

// sentinel marks the end of the embedded payload. It is appended in the
// clear, after the encrypted blocks, as five 8-bit character codes.
const sentinel = "$EOT$"

// blockBits is the serialized width of each encrypted block. The wire format
// fixes it at 32 bits, which caps the usable modulus at 2^32; a larger
// modulus corrupts the bitstream alignment without detection.
const blockBits = 32

// RequiredBits returns the length of the bitstream Embed would write for the
// given message: one fixed-width group per encrypted block plus the sentinel.
func RequiredBits(pub *PublicKey, text string) int {
	b := BlockSize(pub.N)
	blocks := (len(text) + b - 1) / b

	return blocks*blockBits + 8*len(sentinel)
}

// Embed encrypts text with pub and writes the resulting bitstream into the
// low bitsPerChannel bits of img's color channels, in raster order, leaving
// every channel past the end of the stream untouched. bitsPerChannel must be
// between 1 and 4. Returns a *CapacityError when the carrier is too small.
// The buffer is mutated in place.
func Embed(pub *PublicKey, text string, img *PixelBuffer, bitsPerChannel int) error {
	if bitsPerChannel < 1 || bitsPerChannel > 4 {
		return fmt.Errorf("bits per channel must be between 1 and 4, got %d", bitsPerChannel)
	}

	stream := payloadBits(Encrypt(pub, text))

	needed := len(stream)
	if available := img.Capacity(bitsPerChannel); needed > available {
		return &CapacityError{Needed: needed, Available: available}
	}

	mask := uint8(1<<bitsPerChannel - 1)
	cursor := 0

	img.walk(func(i int) bool {
		img.Pix[i] = img.Pix[i]&^mask | chunkValue(stream, cursor, bitsPerChannel)
		cursor += bitsPerChannel

		return cursor < needed
	})

	return nil
}

// Extract reads the low bitsPerChannel bits back from img's color channels
// in the same order Embed wrote them, cuts the stream at the first sentinel
// occurrence, re-chunks the prefix into fixed-width blocks, and decrypts them
// with priv. A wrong key surfaces as ErrDecode or ErrBlockOverflow; a
// bitsPerChannel value that doesn't match the embedding produces garbage.
func Extract(priv *PrivateKey, img *PixelBuffer, bitsPerChannel int) (string, error) {
	if bitsPerChannel < 1 || bitsPerChannel > 4 {
		return "", fmt.Errorf("bits per channel must be between 1 and 4, got %d", bitsPerChannel)
	}

	bits := make([]uint8, 0, img.Capacity(bitsPerChannel))

	img.walk(func(i int) bool {
		for j := bitsPerChannel - 1; j >= 0; j-- {
			bits = append(bits, img.Pix[i]>>j&1)
		}

		return true
	})

	payload, ok := cutSentinel(bits)
	if !ok {
		return "", ErrNoSentinel
	}

	blocks := make([]*big.Int, 0, (len(payload)+blockBits-1)/blockBits)

	for i := 0; i < len(payload); i += blockBits {
		end := i + blockBits
		if end > len(payload) {
			end = len(payload)
		}

		var v uint64
		for _, bit := range payload[i:end] {
			v = v<<1 | uint64(bit)
		}

		blocks = append(blocks, new(big.Int).SetUint64(v))
	}

	return Decrypt(priv, blocks)
}

// payloadBits serializes each encrypted block as blockBits big-endian bits
// and appends the sentinel's bit pattern.
func payloadBits(blocks []*big.Int) []uint8 {
	bits := make([]uint8, 0, len(blocks)*blockBits+8*len(sentinel))

	for _, block := range blocks {
		for i := blockBits - 1; i >= 0; i-- {
			bits = append(bits, uint8(block.Bit(i)))
		}
	}

	return append(bits, sentinelBits()...)
}

// sentinelBits returns the sentinel as 8 bits per character, high bit first.
func sentinelBits() []uint8 {
	bits := make([]uint8, 0, 8*len(sentinel))

	for i := 0; i < len(sentinel); i++ {
		for j := 7; j >= 0; j-- {
			bits = append(bits, sentinel[i]>>j&1)
		}
	}

	return bits
}

// chunkValue reads the next width bits at cursor as an unsigned value. The
// final chunk of the stream may be short; it reads as the smaller integer.
func chunkValue(stream []uint8, cursor, width int) uint8 {
	end := cursor + width
	if end > len(stream) {
		end = len(stream)
	}

	var v uint8
	for _, bit := range stream[cursor:end] {
		v = v<<1 | bit
	}

	return v
}

// cutSentinel returns the prefix of bits before the first occurrence of the
// sentinel's bit pattern. The pattern is not guaranteed unique within the
// payload's own bits; the first match wins.
func cutSentinel(bits []uint8) ([]uint8, bool) {
	if i := bytes.Index(bits, sentinelBits()); i >= 0 {
		return bits[:i], true
	}

	return nil, false
}
