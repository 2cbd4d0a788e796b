package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/quietbyte/stegopix"
	"github.com/quietbyte/stegopix/internal/imgio"
	"github.com/quietbyte/stegopix/internal/primepool"
)

type hideCmd struct {
	Source string `arg:"" type:"existingfile" help:"The path to the carrier PNG file."`
	Data   string `arg:"" type:"existingfile" help:"The path to the file holding the message."`

	Bits   int    `help:"Number of low-order bits to alter in each channel (1-4)." env:"STEGOPIX_BITS" enum:"1,2,3,4" default:"1"`
	Output string `type:"path" help:"Output path for the new image. Defaults to overwriting the source."`
	Primes string `type:"path" help:"Path to the JSON list of candidate primes." env:"STEGOPIX_PRIMES" default:"primes.json"`
}

func (cmd *hideCmd) Run(_ *kong.Context) error {
	// Read the message.
	message, err := os.ReadFile(cmd.Data)
	if err != nil {
		return err
	}

	// Draw two primes from the pool and generate a fresh key pair.
	pool, err := primepool.Load(cmd.Primes)
	if err != nil {
		return err
	}

	primes, err := pool.Sample(rand.Reader, 2)
	if err != nil {
		return err
	}

	pub, priv, err := stegopix.GenerateKeys(rand.Reader, primes[0], primes[1])
	if err != nil {
		return err
	}

	// Load the carrier.
	img, err := imgio.ReadPixels(cmd.Source)
	if err != nil {
		return err
	}

	// Report the bit budget before embedding.
	fmt.Println("Image inspected, requirements:")
	fmt.Printf("%-15s %-10d bits\n", "Needed:", stegopix.RequiredBits(pub, string(message)))
	fmt.Printf("%-15s %-10d bits\n", "Available:", img.Capacity(cmd.Bits))

	if err := stegopix.Embed(pub, string(message), img, cmd.Bits); err != nil {
		return err
	}

	output := cmd.Output
	if output == "" {
		output = cmd.Source
	}

	if err := imgio.WritePixels(output, img); err != nil {
		return err
	}

	// The private key is the only artifact the user keeps.
	fmt.Println()
	fmt.Printf("Message hidden inside %s\n", output)
	fmt.Printf("Decryption key: %s\n", priv)

	return nil
}
