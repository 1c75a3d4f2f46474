// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unitcalc/internal/config"
)

type Options struct {
	group      bool
	trace      bool
	history    bool
	precision  int
	to         string
	configPath string

	closeLog func() error
}

func heredoc(text string) string {
	lines := strings.Split(strings.TrimRight(text, " \t\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	// Find the minimum leading whitespace for non-empty lines
	minIndent := -1
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			leadingSpaces := len(line) - len(strings.TrimLeft(line, " "))
			if minIndent == -1 || leadingSpaces < minIndent {
				minIndent = leadingSpaces
			}
		}
	}

	// Remove the minimum leading whitespace from each line
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}

	return strings.Join(lines, "\n")
}

func longHelp() string {
	return heredoc(fmt.Sprintf(`
        Evaluate an arithmetic expression over measurements with units.
        Arguments are joined with spaces and evaluated as one expression.

        Measurements:
          A number followed by an optional unit, e.g. 5, 5m, 5 kW, 9.8 m/s^2
          Composite units join symbols with * and /, exponents use ^n or ^(n|d)
          A unit starting with / is an inverse, e.g. 4/s

        Operators:
          + - * /   must be surrounded by blanks, e.g. 5m + 3m
          ^n        integer exponent after a value or a parenthesis, e.g. (3m)^2
          ( )       grouping

        Order of operations:
          parentheses, exponents, then * and / left to right, then + and - left to right

        Addition and subtraction convert the right operand into the left operand's unit.
        Use --to to convert the result, e.g. calc --to kWh 5kW * 2hr

        Files:
          configuration  %s
          history        enabled with --history or 'history: true' in the configuration
    `, defaultConfigPath()))
}

func defaultConfigPath() string {
	dir, err := config.DataDir()
	if err != nil {
		return "~/data/calc/config.yaml"
	}
	return dir + "/config.yaml"
}

func addFlags(cmd *cobra.Command, opts *Options) {
	flags := cmd.Flags()
	flags.SetInterspersed(false) // everything after the first argument is expression text
	flags.BoolVarP(&opts.trace, "trace", "t", false, "Trace operations")
	flags.BoolVarP(&opts.group, "group", "g", false, "Use ',' to group decimal numbers")
	flags.IntVarP(&opts.precision, "precision", "p", 4, "Set display precision for floating point numbers")
	flags.StringVar(&opts.to, "to", "", "Convert the result to `UNIT`")
	flags.BoolVar(&opts.history, "history", false, "Record the evaluation in the history database")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Configuration `FILE` (default ~/data/calc/config.yaml)")
}

// apply fills options the user did not set on the command line from cfg.
func (o *Options) apply(cmd *cobra.Command, cfg config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("precision") {
		o.precision = cfg.Precision
	}
	if !flags.Changed("group") {
		o.group = cfg.Group
	}
	if !flags.Changed("history") {
		o.history = cfg.History
	}
}
