// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package command

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli/v2"

	"gitlab.com/yawning/blockcipher.git"
	"gitlab.com/yawning/blockcipher.git/internal/analysis"
)

// AvalancheCommand returns the avalanche command.
func AvalancheCommand() *cli.Command {
	return &cli.Command{
		Name:  "avalanche",
		Usage: "Measure the fraction of ciphertext bits flipped by single bit changes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "alg",
				Aliases: []string{"a"},
				Usage:   "Algorithm name (AES, CAMELLIA)",
				Value:   "AES",
			},
			&cli.IntFlag{
				Name:  "key-size",
				Usage: "Key size in bits: 128, 192 or 256",
				Value: 128,
			},
			&cli.IntFlag{
				Name:  "trials",
				Usage: "Number of random trials",
				Value: 1000,
			},
		},
		Action: measureAvalanche,
	}
}

func measureAvalanche(c *cli.Context) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	alg, err := blockcipher.Lookup(c.String("alg"))
	if err != nil {
		return err
	}
	keyBits := c.Int("key-size")
	if keyBits <= 0 || keyBits%8 != 0 {
		return fmt.Errorf("command: invalid key size %d bits", keyBits)
	}

	newBlock := func(key []byte) (cipher.Block, error) {
		return alg.New(key)
	}
	res, err := analysis.Avalanche(newBlock, keyBits/8, alg.BlockSize(), c.Int("trials"), rand.Reader)
	if err != nil {
		return err
	}
	Logger(c).Debug("avalanche complete", "alg", alg.Name(), "implementation", alg.Implementation(), "trials", res.Trials)

	if format != FormatText {
		return writeStructured(c.App.Writer, format, res)
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s-%d: plaintext bit flip %.4f, key bit flip %.4f (%d trials)\n",
		alg.Name(), keyBits, res.PlaintextFlip, res.KeyFlip, res.Trials)
	return err
}
