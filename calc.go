// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"unitcalc/expression"
	"unitcalc/internal/config"
	"unitcalc/internal/history"
	"unitcalc/internal/logger"
	"unitcalc/units"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute(args []string, stdout, stderr io.Writer) error {
	var opts Options
	defer func() {
		if opts.closeLog != nil {
			_ = opts.closeLog()
		}
	}()

	cmd := newRootCmd(&opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func newRootCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "calc [OPTIONS] EXPRESSION...",
		Short:         "Calculator for measurements with units",
		Long:          longHelp(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			dir, err := config.DataDir()
			if err == nil {
				opts.closeLog, err = logger.Setup(logger.Config{Dir: dir, Debug: opts.trace})
			}
			if err != nil && opts.trace {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("missing expression")
			}
			return run(cmd, opts, strings.Join(args, " "))
		},
	}

	addFlags(cmd, opts)
	cmd.AddCommand(unitsCmd(opts), historyCmd(opts))
	return cmd
}

// loadRegistry reads the configuration and builds the default catalog
// extended with its units.
func loadRegistry(opts *Options) (config.Config, *units.Registry, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger.L().Debug("config.loaded", "path", cfg.Path, "units", len(cfg.Units))

	registry, err := cfg.Registry()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, registry, nil
}

func run(cmd *cobra.Command, opts *Options, input string) error {
	cfg, registry, err := loadRegistry(opts)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if opts.precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", opts.precision)
	}

	log := logger.L().With("input", input)

	e, err := expression.Parse(registry, input)
	if err != nil {
		log.Warn("expression.invalid", "error", err)
		return err
	}

	var trace expression.Tracer
	if opts.trace {
		stderr := cmd.ErrOrStderr()
		trace = func(op string, left, right, result units.Measurement) {
			fmt.Fprintf(stderr, "%s %s %s = %s\n",
				formatMeasurement(left, opts.precision, opts.group), op,
				formatMeasurement(right, opts.precision, opts.group),
				formatMeasurement(result, opts.precision, opts.group))
			log.Debug("expression.step", "op", op, "left", left.String(), "right", right.String(), "result", result.String())
		}
	}

	result, err := e.SolveTraced(trace)
	if err != nil {
		log.Warn("expression.failed", "description", e.String(), "error", err)
		return err
	}

	if opts.to != "" {
		to, err := registry.Unit(opts.to)
		if err != nil {
			return err
		}
		if result, err = result.ConvertTo(to); err != nil {
			return err
		}
	}

	log.Info("expression.solved", "description", e.String(), "result", result.String())
	fmt.Fprintln(cmd.OutOrStdout(), formatMeasurement(result, opts.precision, opts.group))

	if opts.history {
		record(cmd, cfg, history.Entry{
			Input:       input,
			Description: e.String(),
			Value:       result.Value,
			Unit:        result.Unit.Symbol(),
		})
	}
	return nil
}

// record saves an evaluation; a failure is reported but does not fail the
// calculation.
func record(cmd *cobra.Command, cfg config.Config, entry history.Entry) {
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		logger.L().Warn("history.open_failed", "path", cfg.HistoryPath, "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return
	}
	defer store.Close()

	id, err := store.Save(cmd.Context(), entry)
	if err != nil {
		logger.L().Warn("history.save_failed", "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return
	}
	logger.L().Debug("history.saved", "id", id)
}
