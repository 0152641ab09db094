// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package command

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"gitlab.com/yawning/blockcipher.git"
)

func cipherFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "alg",
			Aliases: []string{"a"},
			Usage:   "Algorithm name (AES, CAMELLIA)",
			Value:   "AES",
		},
		&cli.StringFlag{
			Name:     "key",
			Aliases:  []string{"k"},
			Usage:    "Hex encoded 16, 24 or 32 byte key",
			EnvVars:  []string{"BCVEC_KEY"},
			Required: true,
		},
	}
}

// EncryptCommand returns the encrypt command.
func EncryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Usage:     "Encrypt hex encoded blocks, each block independently",
		ArgsUsage: "<hex>",
		Flags:     cipherFlags(),
		Action: func(c *cli.Context) error {
			return transformBlocks(c, true)
		},
	}
}

// DecryptCommand returns the decrypt command.
func DecryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "decrypt",
		Usage:     "Decrypt hex encoded blocks, each block independently",
		ArgsUsage: "<hex>",
		Flags:     cipherFlags(),
		Action: func(c *cli.Context) error {
			return transformBlocks(c, false)
		},
	}
}

func transformBlocks(c *cli.Context, encrypt bool) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one hex argument, got %d", c.NArg())
	}

	key, err := hex.DecodeString(c.String("key"))
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	in, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	if len(in) == 0 || len(in)%blockcipher.BlockSize != 0 {
		return fmt.Errorf("input length %d is not a multiple of %d", len(in), blockcipher.BlockSize)
	}

	b, err := blockcipher.NewCipher(c.String("alg"), key)
	if err != nil {
		return err
	}
	defer b.Reset()

	Logger(c).Debug("transforming blocks", "alg", c.String("alg"), "blocks", len(in)/blockcipher.BlockSize, "encrypt", encrypt)

	out := make([]byte, 0, len(in))
	for off := 0; off < len(in); off += blockcipher.BlockSize {
		blk := in[off : off+blockcipher.BlockSize]
		if encrypt {
			out = b.AppendEncrypt(out, blk)
		} else {
			out = b.AppendDecrypt(out, blk)
		}
	}

	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(out))
	return err
}
