package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textcut/internal/config"
	"textcut/internal/fieldspec"
	"textcut/internal/textio"
	"textcut/internal/tokenize"
)

type cutOptions struct {
	fields     []string
	delim      string
	tab        bool
	outDelim   string
	unique     bool
	sorted     bool
	complement bool
	trim       bool
	number     bool
	skipEmpty  bool
	table      bool
}

func newCutCommand(ctx *commandContext) *cobra.Command {
	opts := &cutOptions{}

	cmd := &cobra.Command{
		Use:   "cut [flags] [FILE]",
		Short: "Select fields from tokenized input lines",
		Long: `Select fields from tokenized input lines.

Each -f value is a comma-separated list of field specs over 1-based
positions:

  N       field N
  -N      Nth field from the end (-1 is the last field)
  N-      field N through the end of the line
  N-M     fields N through M; M below N reverses the order
  r<pat>  fields whose header (first line) token matches the pattern
  R<pat>  fields whose token on the current line matches the pattern

Patterns may be wrapped in slashes (r/a,b/) to contain commas. Out-of-range
positions select nothing; short lines are never an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(ctx, cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.fields, "fields", "f", nil, "Field spec: [-]number, range, or regex (repeatable)")
	cmd.Flags().StringVarP(&opts.delim, "delimiter", "d", "", "Input field separator (default: whitespace runs); '\\t' for TAB")
	cmd.Flags().BoolVarP(&opts.tab, "tab", "T", false, "Short for -d '\\t'")
	cmd.Flags().StringVarP(&opts.outDelim, "output-delimiter", "o", "", "Output field separator (default: input separator, else TAB)")
	cmd.Flags().BoolVarP(&opts.unique, "unique", "u", false, "Drop repeated field indices, keeping first occurrence order")
	cmd.Flags().BoolVarP(&opts.sorted, "sorted", "s", false, "Output fields in ascending index order")
	cmd.Flags().BoolVarP(&opts.complement, "complement", "C", false, "Select every field the spec list does not")
	cmd.Flags().BoolVarP(&opts.trim, "trim", "t", false, "Trim whitespace from every token")
	cmd.Flags().BoolVarP(&opts.number, "number", "n", false, "Prefix each output line with its input line number")
	cmd.Flags().BoolVarP(&opts.skipEmpty, "skip-empty", "z", false, "Suppress lines that select no fields")
	cmd.Flags().BoolVar(&opts.table, "table", false, "Render output as an aligned table")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

func runCut(ctx *commandContext, cmd *cobra.Command, args []string, opts *cutOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	if opts.tab && opts.delim != "" {
		return fmt.Errorf("-T conflicts with -d")
	}

	tokenizer, delim, err := cutTokenizer(cfg, opts)
	if err != nil {
		return err
	}

	specs, err := fieldspec.Parse(opts.fields)
	if err != nil {
		return err
	}

	lines, err := textio.ReadLines(fileArg(args))
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}

	// Header-regex specs freeze against the first line before any data line
	// is processed; data-regex specs keep matching per line.
	header := tokenizer.Tokens(lines[0])
	resolved := fieldspec.ResolveHeader(specs, header)
	logger.Debug("field specs resolved",
		"specs", len(resolved),
		"header_tokens", len(header))

	sel := fieldspec.Selection{
		Unique:     opts.unique,
		Sorted:     opts.sorted,
		Complement: opts.complement,
	}

	outDelim := outputDelimiter(cfg, opts, delim)

	var rows [][]string
	for lineno, line := range lines {
		tokens := tokenizer.Tokens(line)
		indices := sel.Apply(resolved, tokens)
		if opts.skipEmpty && len(indices) == 0 {
			continue
		}

		row := make([]string, 0, len(indices)+1)
		if opts.number {
			row = append(row, strconv.Itoa(lineno+1))
		}
		for _, idx := range indices {
			row = append(row, tokens[idx])
		}
		rows = append(rows, row)
	}

	// A table default from config only applies on a terminal; the explicit
	// flag always wins so output stays scriptable either way.
	if cfg.Output.Table && stdoutIsTerminal() {
		opts.table = true
	}

	return writeCutOutput(cmd.OutOrStdout(), rows, outDelim, opts)
}

// cutTokenizer picks the tokenizer for cut: an explicit delimiter selects the
// literal splitter, otherwise the configured default strategy applies.
// The returned delim is the unescaped input delimiter, empty for whitespace.
func cutTokenizer(cfg *config.Config, opts *cutOptions) (*tokenize.Tokenizer, string, error) {
	spec := tokenize.Spec{
		Strategy: cfg.Tokenizer.Strategy,
		Param:    cfg.Tokenizer.Param,
		Downcase: cfg.Tokenizer.Downcase,
		Trim:     opts.trim || cfg.Tokenizer.Trim,
		Filter:   cfg.Tokenizer.Filter,
	}

	delim := unescapeDelimiter(opts.delim)
	if opts.tab {
		delim = "\t"
	}
	if delim != "" {
		spec.Strategy = "splitstr"
		spec.Param = delim
	}

	tokenizer, err := tokenize.New(spec)
	if err != nil {
		return nil, "", err
	}
	return tokenizer, delim, nil
}

func outputDelimiter(cfg *config.Config, opts *cutOptions, inDelim string) string {
	if opts.outDelim != "" {
		return unescapeDelimiter(opts.outDelim)
	}
	if inDelim != "" {
		return inDelim
	}
	return cfg.Output.Delimiter
}

func unescapeDelimiter(s string) string {
	switch s {
	case `\t`:
		return "\t"
	case `\n`:
		return "\n"
	default:
		return s
	}
}

func writeCutOutput(w io.Writer, rows [][]string, outDelim string, opts *cutOptions) error {
	if opts.table && len(rows) > 0 {
		headers := rows[0]
		if opts.number && len(headers) > 0 {
			headers = append([]string{"#"}, headers[1:]...)
		}
		if _, err := fmt.Fprintln(w, renderTable(headers, rows[1:])); err != nil {
			return err
		}
		return nil
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, outDelim)); err != nil {
			return err
		}
	}
	return nil
}

func fileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
