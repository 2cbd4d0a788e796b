package stegopix

import (
	"math/big"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp"
)

// The classical worked example: p=61, q=53, n=3233, φ=3120, e=17, d=2753.
var (
	testPub  = &PublicKey{E: big.NewInt(17), N: big.NewInt(3233)}
	testPriv = &PrivateKey{D: big.NewInt(2753), N: big.NewInt(3233)}

	// bigIntsByValue compares *big.Int values by their decimal form.
	bigIntsByValue = cmp.Transformer("bigint", func(x *big.Int) string { return x.String() })
)

func TestEncrypt(t *testing.T) {
	t.Parallel()

	// "A" is a single block of 65; 65^17 mod 3233 = 2790.
	assert.Equal(t, "ciphertext",
		[]*big.Int{big.NewInt(2790)}, Encrypt(testPub, "A"), bigIntsByValue)
}

func TestDecrypt(t *testing.T) {
	t.Parallel()

	got, err := Decrypt(testPriv, []*big.Int{big.NewInt(2790)})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "plaintext", "A", got)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"hi!",
		"the quick brown fox jumps over the lazy dog",
		"ünïcödé ís fïné tōō",
	}

	for _, text := range texts {
		got, err := Decrypt(testPriv, Encrypt(testPub, text))
		if err != nil {
			t.Fatalf("Decrypt(Encrypt(%q)): %v", text, err)
		}

		assert.Equal(t, "round-tripped text", text, got)
	}
}

func TestEncryptBlocksInRange(t *testing.T) {
	t.Parallel()

	for _, block := range Encrypt(testPub, "the quick brown fox") {
		if block.Sign() < 0 || block.Cmp(testPub.N) >= 0 {
			t.Errorf("block %s outside [0, %s)", block, testPub.N)
		}
	}
}
