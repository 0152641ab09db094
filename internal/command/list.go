// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"gitlab.com/yawning/blockcipher.git"
)

// AlgorithmInfo describes a registered algorithm.
type AlgorithmInfo struct {
	Name           string `json:"name" yaml:"name"`
	Implementation string `json:"implementation" yaml:"implementation"`
	BlockSize      int    `json:"block_size" yaml:"block_size"`
	ContextSize    int    `json:"context_size" yaml:"context_size"`
}

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List the registered algorithms",
		Action: listAlgorithms,
	}
}

func listAlgorithms(c *cli.Context) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	var infos []AlgorithmInfo
	for _, alg := range blockcipher.Algorithms() {
		infos = append(infos, AlgorithmInfo{
			Name:           alg.Name(),
			Implementation: alg.Implementation(),
			BlockSize:      alg.BlockSize(),
			ContextSize:    alg.ContextSize(),
		})
	}

	if format != FormatText {
		return writeStructured(c.App.Writer, format, infos)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tIMPLEMENTATION\tBLOCK SIZE\tCONTEXT SIZE")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", info.Name, info.Implementation, info.BlockSize, info.ContextSize)
	}
	return tw.Flush()
}
