// Package main provides a small CLI for exercising the prettui facilities
// interactively from a terminal.
//
// Usage:
//
//	prettui list [flags]     Pick from a generated list
//	prettui input            Read a styled line and echo it back
//	prettui output [flags]   Print a styled, wrapped message
//	prettui confirm          Ask a yes/no question
//	prettui number [flags]   Read a bounded number
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keepinfov/prettui"
)

func main() {
	root := &cobra.Command{
		Use:           "prettui",
		Short:         "Interactive terminal selection lists and prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		listCmd(),
		inputCmd(),
		outputCmd(),
		confirmCmd(),
		numberCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listCmd() *cobra.Command {
	var (
		count       int
		itemsPerRow int
		rowsPerPage int
		cellWidth   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Pick an item from a generated list",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]string, count)
			for i := range items {
				items[i] = fmt.Sprintf("Item %d", i+1)
			}

			cfg := prettui.DefaultListConfig().
				WithItemsPerRow(itemsPerRow).
				WithRowsPerPage(rowsPerPage).
				WithCellWidth(cellWidth)

			idx, ok, err := prettui.ChooseFromList(items, cfg)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Selection cancelled.")
				return nil
			}
			fmt.Printf("You chose: %s\n", items[idx])
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 50, "number of items to generate")
	cmd.Flags().IntVar(&itemsPerRow, "items-per-row", 3, "items per row")
	cmd.Flags().IntVar(&rowsPerPage, "rows-per-page", 5, "rows per page")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 20, "cell width in columns")
	return cmd
}

func inputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "input",
		Short: "Read a styled line and echo it back",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := prettui.DefaultInputConfig()
			cfg.Prefix = "[demo] "

			line, err := prettui.ReadInput(cfg)
			if err != nil {
				return err
			}
			return prettui.WriteOutput(prettui.DefaultOutputConfig(), "You typed: "+line)
		},
	}
}

func outputCmd() *cobra.Command {
	var (
		level  string
		prefix string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "output [message]",
		Short: "Print a styled, wrapped message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := "Hello from prettui! This message wraps at the configured width so long text stays readable."
			if len(args) == 1 {
				message = args[0]
			}

			cfg := prettui.DefaultOutputConfig()
			cfg.LogLevel = level
			cfg.Prefix = prefix
			cfg.MaxCharsPerLine = width
			return prettui.WriteOutput(cfg, message)
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "log level tag (e.g. INFO)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "line prefix")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width in columns")
	return cmd
}

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Ask a yes/no question",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes := true
			ok, err := prettui.Confirm("Proceed?", prettui.ConfirmConfig{Default: &yes}, prettui.DefaultInputConfig())
			if err != nil {
				return err
			}
			fmt.Printf("Answer: %v\n", ok)
			return nil
		},
	}
}

func numberCmd() *cobra.Command {
	var (
		min int64
		max int64
	)

	cmd := &cobra.Command{
		Use:   "number",
		Short: "Read a bounded number",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := prettui.DefaultNumberConfig()
			cfg.Min = &min
			cfg.Max = &max

			n, err := prettui.ReadNumber("Pick a number", cfg, prettui.DefaultInputConfig())
			if err != nil {
				return err
			}
			fmt.Printf("You picked: %d\n", n)
			return nil
		},
	}

	cmd.Flags().Int64Var(&min, "min", 1, "minimum value")
	cmd.Flags().Int64Var(&max, "max", 100, "maximum value")
	return cmd
}
