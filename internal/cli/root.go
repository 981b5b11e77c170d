// Package cli implements the columnize command.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/columnize"
	"github.com/bjaus/columnize/internal/logger"
)

// termGetSize is swapped out in tests.
var termGetSize = term.GetSize

type flags struct {
	spacing    int
	width      int
	configPath string
	showPlan   bool
	pairs      bool
	sort       bool
	verbose    bool
}

func (f *flags) bind(fs *pflag.FlagSet) {
	fs.IntVarP(&f.spacing, "spacing", "s", columnize.DefaultSpacing, "blanks between columns")
	fs.IntVarP(&f.width, "width", "w", 0, "maximum line width (0 detects the terminal width)")
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML file with spacing and width")
	fs.BoolVar(&f.showPlan, "plan", false, "print the column plan as YAML instead of the listing")
	fs.BoolVar(&f.pairs, "pairs", false, "split items on the first '=' and print aligned key/value pairs")
	fs.BoolVar(&f.sort, "sort", false, "sort items before laying them out")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details to stderr")
}

// NewRootCommand returns the columnize command.
func NewRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "columnize [item...]",
		Short: "Print items in compact columns",
		Long: `Print items in as many columns as fit on a line, filling each column
top to bottom. Items come from the arguments, or one per line from
standard input when no arguments are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), f.verbose)
			cmd.SetContext(logger.WithLogger(cmd.Context(), log))
			return run(cmd, &f, args)
		},
	}
	f.bind(cmd.Flags())
	return cmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	log := logger.FromContext(cmd.Context())

	opts, err := resolveOptions(cmd, f)
	if err != nil {
		return err
	}
	log.V(1).Info("resolved options", "spacing", opts.Spacing, "width", opts.Width)

	items := args
	if len(items) == 0 {
		if items, err = readItems(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read items: %w", err)
		}
	}
	if f.sort {
		items = slices.Clone(items)
		slices.Sort(items)
	}
	log.V(1).Info("read items", "count", len(items))

	out := cmd.OutOrStdout()
	if f.pairs {
		pairs := splitPairs(items)
		if f.showPlan {
			p, err := columnize.PairPlan(pairs, opts.Spacing, opts.Width)
			if err != nil {
				return err
			}
			return columnize.WritePlan(out, p)
		}
		return columnize.WritePairs(out, opts, pairs...)
	}

	p, err := columnize.NewPlan(items, opts.Spacing, opts.Width)
	if err != nil {
		return err
	}
	log.V(1).Info("planned layout", "columns", p.Columns(), "lines", p.Lines(len(items)), "lineWidth", p.Width())
	if f.showPlan {
		return columnize.WritePlan(out, p)
	}
	lines, err := p.Render(items)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, strings.Join(lines, "\n")+"\n")
	return err
}

// resolveOptions layers defaults, the config file, and explicitly set
// flags, in that order. A width of zero after layering means "use the
// terminal width".
func resolveOptions(cmd *cobra.Command, f *flags) (columnize.Options, error) {
	opts := columnize.DefaultOptions()
	opts.Width = 0
	if f.configPath != "" {
		file, err := os.Open(f.configPath)
		if err != nil {
			return columnize.Options{}, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if opts, err = columnize.DecodeOptions(file, opts); err != nil {
			return columnize.Options{}, fmt.Errorf("load config %s: %w", f.configPath, err)
		}
	}
	fs := cmd.Flags()
	if fs.Changed("spacing") {
		opts.Spacing = f.spacing
	}
	if fs.Changed("width") {
		opts.Width = f.width
	}
	if opts.Width == 0 {
		opts.Width = terminalWidth(cmd.OutOrStdout())
	}
	return opts, opts.Validate()
}

// terminalWidth returns the width of w when it is a terminal and
// [columnize.DefaultWidth] otherwise.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return columnize.DefaultWidth
	}
	if width, _, err := termGetSize(int(file.Fd())); err == nil && width > 0 {
		return width
	}
	return columnize.DefaultWidth
}

func readItems(r io.Reader) ([]string, error) {
	var items []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items, sc.Err()
}

func splitPairs(items []string) []columnize.KeyValue {
	pairs := make([]columnize.KeyValue, len(items))
	for i, item := range items {
		key, value, _ := strings.Cut(item, "=")
		pairs[i] = columnize.KeyValue{Key: key, Value: value}
	}
	return pairs
}
