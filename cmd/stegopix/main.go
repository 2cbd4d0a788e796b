package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

type cli struct {
	Hide    hideCmd    `cmd:"" help:"Encrypt a message and hide it inside a PNG image."`
	Extract extractCmd `cmd:"" help:"Extract and decrypt a message hidden inside a PNG image."`
}

func main() {
	// Pick up STEGOPIX_* defaults from a local .env, if present.
	_ = godotenv.Load()

	var cli cli

	ctx := kong.Parse(&cli,
		kong.Description("Hide or extract an encrypted message in a PNG image."))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func askKey(prompt string) (string, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	b, err := term.ReadPassword(int(os.Stdin.Fd()))

	return string(b), err
}
