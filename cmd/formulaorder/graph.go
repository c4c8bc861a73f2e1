package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golangsnmp/formulaorder"
	"github.com/golangsnmp/formulaorder/cmd/internal/cliutil"
	"github.com/golangsnmp/formulaorder/internal/config"
)

func (a *app) newGraphCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph [FILE]",
		Short: "Dump the ordered formulas with their dependencies",
		Long: `Print every formula in output order with its line, declared and
called names, the formulas it depends on, and its rank.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && a.cfg.Output.Format != config.FormatText {
				format = a.cfg.Output.Format
			}
			return a.runGraph(cmd, args, format, output)
		},
	}
	cmd.Flags().StringVar(&format, "format", config.FormatJSON, "output format: json, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (a *app) runGraph(cmd *cobra.Command, args []string, format, output string) error {
	if format != config.FormatJSON && format != config.FormatYAML {
		return fmt.Errorf("unknown format: %s", format)
	}

	res, err := formulaorder.OrderSource(a.source(cmd, args), a.options()...)
	if err != nil {
		return fmt.Errorf("%s: %w", formulaorder.Message(err), err)
	}

	w, done, err := cliutil.GetOutput(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer done()

	if format == config.FormatYAML {
		return writeYAML(w, res)
	}
	return writeJSON(w, res)
}
