// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"unitcalc/internal/config"
	"unitcalc/internal/history"
	"unitcalc/units"
)

func unitsCmd(opts *Options) *cobra.Command {
	var asYAML bool

	c := &cobra.Command{
		Use:   "units",
		Short: "List the known units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, registry, err := loadRegistry(opts)
			if err != nil {
				return err
			}

			if asYAML {
				b, err := config.EncodeUnits(registry.Units())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}

			printUnits(cmd.OutOrStdout(), registry.Units())
			return nil
		},
	}

	c.Flags().BoolVar(&asYAML, "yaml", false, "Print the units in configuration file format")
	return c
}

func printUnits(w io.Writer, defined []units.DefinedUnit) {
	symbolWidth, nameWidth := len("Symbol"), len("Name")
	for _, d := range defined {
		symbolWidth = max(symbolWidth, len([]rune(d.Symbol())))
		nameWidth = max(nameWidth, len(d.Name()))
	}

	fmt.Fprintf(w, "%-*s  %-*s  %s\n", symbolWidth, "Symbol", nameWidth, "Name", "Dimension")
	for _, d := range defined {
		dimension := d.Dimension().String()
		if dimension == "" {
			dimension = "-"
		}
		// pad by runes so symbols like °C line up
		pad := symbolWidth - len([]rune(d.Symbol()))
		fmt.Fprintf(w, "%s%*s  %-*s  %s\n", d.Symbol(), pad, "", nameWidth, d.Name(), dimension)
	}
}

func historyCmd(opts *Options) *cobra.Command {
	var count int

	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), count)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i := len(entries) - 1; i >= 0; i-- { // oldest first, like a shell history
				e := entries[i]
				result := formatValue(e.Value, cfg.Precision, cfg.Group)
				if e.Unit != "" {
					result += " " + e.Unit
				}
				fmt.Fprintf(w, "%s  %s = %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Description, result)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&count, "count", "n", 10, "Number of entries to show")
	return c
}
