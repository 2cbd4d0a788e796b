package stegopix

import (
	"errors"
	"math/big"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestBlockSize(t *testing.T) {
	t.Parallel()

	sizes := map[int64]int{
		6:             1,
		3233:          1,
		65535:         1,
		65536:         2,
		(1 << 24) - 1: 2,
		1 << 24:       3,
		1 << 30:       3,
		(1 << 32) - 1: 3,
		1 << 32:       4,
	}

	for n, want := range sizes {
		assert.Equal(t, "block size", want, BlockSize(big.NewInt(n)))
	}
}

func TestBlockSizeMonotonic(t *testing.T) {
	t.Parallel()

	prev := 0

	for _, n := range []int64{2, 255, 3233, 65535, 65536, 1 << 20, 1 << 24, 1 << 30, 1 << 40, 1 << 62} {
		b := BlockSize(big.NewInt(n))

		if b < prev {
			t.Fatalf("BlockSize(%d) = %d, smaller than %d for a smaller modulus", n, b, prev)
		}

		prev = b
	}
}

func TestTextToBlocksRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"a",
		"hi!",
		"a longer message which spans a number of blocks",
		"héllo wörld, multi-byte text",
	}

	for _, text := range texts {
		for _, b := range []int{1, 2, 3, 4} {
			got, err := blocksToText(textToBlocks(text, b), b)
			if err != nil {
				t.Fatalf("blocksToText(%q, %d): %v", text, b, err)
			}

			assert.Equal(t, "round-tripped text", text, got)
		}
	}
}

func TestTextToBlocksPadding(t *testing.T) {
	t.Parallel()

	// A 5-byte text in 2-byte blocks pads to 3 blocks, the last one
	// zero-padded on the right.
	blocks := textToBlocks("hello", 2)

	assert.Equal(t, "block count", 3, len(blocks))
	assert.Equal(t, "first block", int64('h')<<8|int64('e'), blocks[0].Int64())
	assert.Equal(t, "last block", int64('o')<<8, blocks[2].Int64())
}

func TestBlocksToTextTruncatesAtNUL(t *testing.T) {
	t.Parallel()

	// "hi\x00!" truncates at the NUL marker.
	blocks := []*big.Int{
		big.NewInt(int64('h')<<8 | int64('i')),
		big.NewInt(int64('!')), // high byte is NUL
	}

	got, err := blocksToText(blocks, 2)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "truncated text", "hi", got)
}

func TestBlocksToTextOverflow(t *testing.T) {
	t.Parallel()

	_, err := blocksToText([]*big.Int{big.NewInt(300)}, 1)

	if !errors.Is(err, ErrBlockOverflow) {
		t.Fatalf("err = %v, want ErrBlockOverflow", err)
	}
}

func TestBlocksToTextInvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := blocksToText([]*big.Int{big.NewInt(0xFF)}, 1)

	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}
