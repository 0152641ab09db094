// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"gitlab.com/yawning/blockcipher.git"
	"gitlab.com/yawning/blockcipher.git/internal/vectors"
)

// VerifyResult summarizes a vector file run.
type VerifyResult struct {
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
}

// VerifyCommand returns the verify command.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check known answer vector files (JSON or YAML)",
		ArgsUsage: "<file>...",
		Action:    verifyVectors,
	}
}

func verifyVectors(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no vector files given")
	}
	format, err := outputFormat(c)
	if err != nil {
		return err
	}
	logger := Logger(c)

	var res VerifyResult
	for _, path := range c.Args().Slice() {
		vecs, err := vectors.Load(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}

		for i, v := range vecs {
			if err := checkVector(v); err != nil {
				logger.Error("vector failed", "file", path, "index", i, "algorithm", v.Algorithm, "comment", v.Comment, "error", err)
				res.Failed++
				continue
			}
			logger.Debug("vector passed", "file", path, "index", i, "algorithm", v.Algorithm)
			res.Passed++
		}
	}

	if format == FormatText {
		fmt.Fprintf(c.App.Writer, "passed: %d, failed: %d\n", res.Passed, res.Failed)
	} else if err := writeStructured(c.App.Writer, format, res); err != nil {
		return err
	}

	if res.Failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", res.Failed, res.Failed+res.Passed)
	}
	return nil
}

func checkVector(v *vectors.Vector) error {
	b, err := blockcipher.NewCipher(v.Algorithm, v.Key)
	if err != nil {
		return err
	}
	defer b.Reset()

	return vectors.Check(b, v)
}
