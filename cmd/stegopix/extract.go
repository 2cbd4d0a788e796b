package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/quietbyte/stegopix"
	"github.com/quietbyte/stegopix/internal/imgio"
)

type extractCmd struct {
	Source string `arg:"" type:"existingfile" help:"The path to the PNG file holding the message."`
	Key    string `arg:"" optional:"" help:"The decryption key printed by hide (d-n). Prompted for when omitted."`

	Bits   int    `help:"Number of low-order bits used when the message was hidden (1-4)." env:"STEGOPIX_BITS" enum:"1,2,3,4" default:"1"`
	Output string `type:"path" help:"Path to a file where the message should be saved. Defaults to stdout."`
}

func (cmd *extractCmd) Run(_ *kong.Context) error {
	key := cmd.Key

	// Prompt for the key without echo when it wasn't given as an argument.
	if key == "" {
		k, err := askKey("Enter decryption key: ")
		if err != nil {
			return err
		}

		key = k
	}

	var priv stegopix.PrivateKey
	if err := priv.UnmarshalText([]byte(key)); err != nil {
		return err
	}

	img, err := imgio.ReadPixels(cmd.Source)
	if err != nil {
		return err
	}

	message, err := stegopix.Extract(&priv, img, cmd.Bits)
	if err != nil {
		return err
	}

	if cmd.Output != "" {
		return os.WriteFile(cmd.Output, []byte(message), 0644)
	}

	fmt.Println(message)

	return nil
}
