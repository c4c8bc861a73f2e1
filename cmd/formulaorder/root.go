package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/golangsnmp/formulaorder"
	"github.com/golangsnmp/formulaorder/internal/config"
	"github.com/golangsnmp/formulaorder/internal/style"
)

const rootLong = `Read formula declarations from FILE (or standard input) and print
them so that every formula comes after the formulas it uses.

Each line declares names and the same number of expressions:

  x, y = a * (b + a), -c / 2
  a, b, c = 1, 2, 3

On failure exactly one line is printed: "syntax error" or "cycle".`

const rootExample = `  formulaorder formulas.txt
  formulaorder < formulas.txt
  formulaorder --explain --exit-code formulas.txt
  formulaorder lint --format json formulas.txt
  formulaorder graph --format yaml formulas.txt`

// defaultConfigFile is read from the working directory when --config is
// not given.
const defaultConfigFile = "formulaorder.toml"

// app holds the flags and settings shared by all commands.
type app struct {
	configPath string
	verbose    int
	noColor    bool

	explain  bool
	exitCode bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "formulaorder [FILE]",
		Short:             "Order formula declarations by dependency",
		Long:              rootLong,
		Example:           rootExample,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runOrder,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "settings file (TOML, default ./"+defaultConfigFile+" if present)")
	pf.CountVarP(&a.verbose, "verbose", "v", "enable debug logging; -vv for trace")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.Flags().BoolVar(&a.explain, "explain", false, "describe the outcome on stderr")
	root.Flags().BoolVar(&a.exitCode, "exit-code", false, "exit 1 on syntax error and 2 on cycle")

	root.AddCommand(a.newLintCmd(), a.newGraphCmd(), newVersionCmd())
	return root
}

// setup loads the settings file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	path := a.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	a.cfg = cfg

	switch {
	case a.noColor:
		style.SetColor(false)
	case cfg.Output.Color != nil:
		style.SetColor(*cfg.Output.Color)
	}

	level, ok := a.logLevel()
	if ok {
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		}))
	}
	return nil
}

// logLevel picks the level from -v flags, falling back to [log] level.
// ok is false when logging stays off.
func (a *app) logLevel() (slog.Level, bool) {
	switch {
	case a.verbose >= 2:
		return formulaorder.LevelTrace, true
	case a.verbose == 1:
		return slog.LevelDebug, true
	}
	switch a.cfg.Log.Level {
	case "error":
		return slog.LevelError, true
	case "warn":
		return slog.LevelWarn, true
	case "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	case "trace":
		return formulaorder.LevelTrace, true
	}
	return 0, false
}

func (a *app) options() []formulaorder.Option {
	opts := []formulaorder.Option{formulaorder.WithMaxNesting(a.cfg.Parser.MaxNesting)}
	if a.logger != nil {
		opts = append(opts, formulaorder.WithLogger(a.logger))
	}
	return opts
}

func (a *app) source(cmd *cobra.Command, args []string) formulaorder.Source {
	if len(args) == 0 || args[0] == "-" {
		return formulaorder.Reader("", cmd.InOrStdin())
	}
	return formulaorder.File(args[0])
}

// flagOr returns the flag value when it was set on the command line and
// the settings value otherwise.
func flagOr(cmd *cobra.Command, name string, flagValue, cfgValue bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return cfgValue
}

func (a *app) runOrder(cmd *cobra.Command, args []string) error {
	explain := flagOr(cmd, "explain", a.explain, a.cfg.Output.Explain)
	exitCode := flagOr(cmd, "exit-code", a.exitCode, a.cfg.Output.ExitCode)

	src := a.source(cmd, args)
	res, err := formulaorder.OrderSource(src, a.options()...)
	out := cmd.OutOrStdout()
	if err != nil {
		if !errors.Is(err, formulaorder.ErrSyntax) && !errors.Is(err, formulaorder.ErrCycle) {
			return err
		}
		fmt.Fprintln(out, formulaorder.Message(err))
		if explain {
			d := formulaorder.DiagnosticOf(err)
			d.Source = src.Name()
			fmt.Fprintln(cmd.ErrOrStderr(), style.FormatDiagnostic(d))
		}
		if exitCode {
			if errors.Is(err, formulaorder.ErrCycle) {
				return NewSilentExit(exitCycle)
			}
			return NewSilentExit(exitSyntax)
		}
		return nil
	}

	for _, label := range res.Labels() {
		fmt.Fprintln(out, label)
	}
	if explain {
		explainOrder(cmd, res)
	}
	return nil
}

// explainOrder writes each formula with its rank and the formulas it
// waits for.
func explainOrder(cmd *cobra.Command, res *formulaorder.Result) {
	w := cmd.ErrOrStderr()
	width := len(strconv.Itoa(res.Len()))
	for _, f := range res.Formulas {
		fmt.Fprintln(w, style.FormatRanked(f.Rank, width, f.Label))
		if deps := style.FormatDependsOn(width, f.DependsOn); deps != "" {
			fmt.Fprintln(w, deps)
		}
	}
}
