// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Command bcvec exercises the block ciphers: it lists the registered
// algorithms, encrypts and decrypts single blocks, checks known answer
// vector files and measures the avalanche effect.
package main

import (
	"fmt"
	"os"

	"gitlab.com/yawning/blockcipher.git/internal/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
