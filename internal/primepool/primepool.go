// Package primepool loads candidate primes from a persisted JSON list and
// samples key-generation material from it.
package primepool

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
)

// Pool is a set of candidate primes. Entries are trusted to be prime; the
// pool does not verify them.
type Pool struct {
	primes []*big.Int
}

// Load reads a JSON array of primes from the given path.
func Load(path string) (*Pool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prime pool unavailable: %w", err)
	}

	var primes []*big.Int
	if err := json.Unmarshal(b, &primes); err != nil {
		return nil, fmt.Errorf("prime pool %s: %w", path, err)
	}

	return &Pool{primes: primes}, nil
}

// Len returns the number of primes in the pool.
func (p *Pool) Len() int {
	return len(p.primes)
}

// Sample draws n primes from distinct pool positions, uniformly, using the
// given random source.
func (p *Pool) Sample(r io.Reader, n int) ([]*big.Int, error) {
	if n > len(p.primes) {
		return nil, fmt.Errorf("prime pool has %d entries, need %d", len(p.primes), n)
	}

	// Partial Fisher-Yates over the index space.
	idx := make([]int, len(p.primes))
	for i := range idx {
		idx[i] = i
	}

	out := make([]*big.Int, n)

	for i := 0; i < n; i++ {
		j, err := rand.Int(r, big.NewInt(int64(len(idx)-i)))
		if err != nil {
			return nil, err
		}

		k := i + int(j.Int64())
		idx[i], idx[k] = idx[k], idx[i]
		out[i] = p.primes[idx[i]]
	}

	return out, nil
}
