package stegopix

import (
	"crypto/rand"
	"encoding"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// PublicKey is the encryption half of a key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the decryption half of a key pair. Its text form is the
// decimal pair "d-n", which is what the hiding step hands back to the user
// and the extraction step parses again.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

func (pk *PrivateKey) MarshalText() (text []byte, err error) {
	return []byte(pk.D.String() + "-" + pk.N.String()), nil
}

func (pk *PrivateKey) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), "-", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid private key %q", text)
	}

	d, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return fmt.Errorf("invalid private key %q", text)
	}

	n, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		return fmt.Errorf("invalid private key %q", text)
	}

	pk.D, pk.N = d, n

	return nil
}

func (pk *PrivateKey) String() string {
	text, err := pk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

var (
	_ encoding.TextMarshaler   = &PrivateKey{}
	_ encoding.TextUnmarshaler = &PrivateKey{}
	_ fmt.Stringer             = &PrivateKey{}
)

// maxKeyAttempts bounds the search for a public exponent coprime to φ(n).
// Coprime residues are dense, so in practice the search succeeds within the
// first few draws.
const maxKeyAttempts = 4096

// GenerateKeys derives a key pair from two distinct primes, drawing candidate
// public exponents from r until one is coprime to φ(n). The primes are
// trusted; primality is the caller's responsibility. Returns
// ErrKeyGeneration if no usable exponent is found within the retry budget.
func GenerateKeys(r io.Reader, p, q *big.Int) (*PublicKey, *PrivateKey, error) {
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	// Candidates are drawn uniformly from [2, φ-1].
	span := new(big.Int).Sub(phi, two)
	if span.Sign() <= 0 {
		return nil, nil, ErrKeyGeneration
	}

	for i := 0; i < maxKeyAttempts; i++ {
		e, err := rand.Int(r, span)
		if err != nil {
			return nil, nil, err
		}

		e.Add(e, two)

		if GCD(e, phi).Cmp(one) != 0 {
			continue
		}

		d := ModInverse(e, phi)

		return &PublicKey{E: e, N: n}, &PrivateKey{D: d, N: n}, nil
	}

	return nil, nil, ErrKeyGeneration
}
