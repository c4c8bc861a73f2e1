package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/formulaorder"
	"github.com/golangsnmp/formulaorder/internal/config"
	"github.com/golangsnmp/formulaorder/internal/style"
)

type lintResult struct {
	Source      string                    `json:"source,omitempty" yaml:"source,omitempty"`
	Diagnostics []formulaorder.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	Summary     lintSummary               `json:"summary" yaml:"summary"`
}

type lintSummary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Formulas int `json:"formulas" yaml:"formulas"`
}

func (a *app) newLintCmd() *cobra.Command {
	var (
		format     string
		crossCheck bool
	)

	cmd := &cobra.Command{
		Use:   "lint [FILE]",
		Short: "Report every problem in a formula file",
		Long: `Check formula declarations and list diagnostics with positions.

Unlike the default command, every dependency cycle group is reported.
With --crosscheck each line is also checked against an independent
grammar and disagreements are reported as warnings.

Exits 1 if any error is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			crossCheck = flagOr(cmd, "crosscheck", crossCheck, a.cfg.Lint.CrossCheck)
			return a.runLint(cmd, args, format, crossCheck)
		},
	}
	cmd.Flags().StringVar(&format, "format", config.FormatText, "output format: text, json, yaml")
	cmd.Flags().BoolVar(&crossCheck, "crosscheck", false, "compare each line against the reference grammar")
	return cmd
}

func (a *app) runLint(cmd *cobra.Command, args []string, format string, crossCheck bool) error {
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	src := a.source(cmd, args)
	opts := append(a.options(), formulaorder.WithCrossCheck(crossCheck))
	report, err := formulaorder.CheckSource(src, opts...)
	if err != nil {
		return err
	}

	result := lintResult{Source: src.Name(), Diagnostics: report.Diagnostics}
	if result.Diagnostics == nil {
		result.Diagnostics = []formulaorder.Diagnostic{}
	}
	for _, d := range report.Diagnostics {
		switch d.Severity {
		case formulaorder.SeverityError:
			result.Summary.Errors++
		case formulaorder.SeverityWarning:
			result.Summary.Warnings++
		}
	}
	if report.Result != nil {
		result.Summary.Formulas = report.Result.Len()
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		err = writeJSON(out, result)
	case config.FormatYAML:
		err = writeYAML(out, result)
	default:
		printLintText(out, result)
	}
	if err != nil {
		return err
	}

	if report.HasErrors() {
		return NewSilentExit(exitError)
	}
	return nil
}

func printLintText(w io.Writer, result lintResult) {
	for _, d := range result.Diagnostics {
		fmt.Fprintln(w, style.FormatDiagnostic(d))
	}
	s := result.Summary
	if s.Errors == 0 && s.Warnings == 0 {
		fmt.Fprintln(w, style.Dim.Render(fmt.Sprintf("%d formulas, no problems", s.Formulas)))
		return
	}
	fmt.Fprintln(w, style.Bold.Render(fmt.Sprintf("%d errors, %d warnings", s.Errors, s.Warnings)))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
