package stegopix

import "math/big"

// Encrypt splits text into modulus-sized blocks and raises each one to the
// public exponent mod n. The resulting integers all lie in [0, n).
func Encrypt(pub *PublicKey, text string) []*big.Int {
	b := BlockSize(pub.N)

	blocks := textToBlocks(text, b)
	out := make([]*big.Int, len(blocks))

	for i, block := range blocks {
		out[i] = ModExp(block, pub.E, pub.N)
	}

	return out
}

// Decrypt raises each block to the private exponent mod n and reassembles
// the text. For any key pair produced by GenerateKeys from the same primes,
// Decrypt(priv, Encrypt(pub, text)) returns text unchanged.
func Decrypt(priv *PrivateKey, blocks []*big.Int) (string, error) {
	b := BlockSize(priv.N)

	plain := make([]*big.Int, len(blocks))
	for i, block := range blocks {
		plain[i] = ModExp(block, priv.D, priv.N)
	}

	return blocksToText(plain, b)
}
