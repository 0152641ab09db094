// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package command provides the bcvec command definitions.
package command

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
)

// Version is the bcvec version, set via ldflags.
var Version = "dev"

const loggerKey = "logger"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "bcvec",
		Usage:   "AES/Camellia block cipher test tool",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn, error",
				EnvVars: []string{"BCVEC_LOG_LEVEL"},
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json, yaml",
				Value:   "text",
			},
		},
		Commands: []*cli.Command{
			ListCommand(),
			EncryptCommand(),
			DecryptCommand(),
			VerifyCommand(),
			AvalancheCommand(),
		},
		Before: func(c *cli.Context) error {
			level := hclog.LevelFromString(c.String("log-level"))
			if level == hclog.NoLevel {
				return fmt.Errorf("invalid log level: %q", c.String("log-level"))
			}
			c.App.Metadata[loggerKey] = hclog.New(&hclog.LoggerOptions{
				Name:   "bcvec",
				Level:  level,
				Output: c.App.ErrWriter,
			})
			return nil
		},
	}
}

// Logger retrieves the logger from context.
func Logger(c *cli.Context) hclog.Logger {
	if l, ok := c.App.Metadata[loggerKey].(hclog.Logger); ok {
		return l
	}
	return hclog.NewNullLogger()
}
