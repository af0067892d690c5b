package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/SLASH2NL/selectiter"
	"github.com/SLASH2NL/selectiter/check"
	"github.com/SLASH2NL/selectiter/cursors"
	"github.com/SLASH2NL/selectiter/internal/locale"
	"github.com/SLASH2NL/selectiter/internal/typelist"
	"github.com/SLASH2NL/selectiter/records"
	"github.com/SLASH2NL/selectiter/tuple"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// row is the record layout of the files handled by print and bump.
type row = tuple.T3[int, string, bool]

func main() {
	cmd := newRootCmd(afero.NewOsFs())
	cobra.CheckErr(cmd.ExecuteContext(context.Background()))
}

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd(fs afero.Fs) *cobra.Command {
	var (
		verbose bool
		raw     string
	)

	rootCmd := &cobra.Command{
		Use:           "selectiter",
		Short:         "Project single fields out of files of tuple records.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			ctx := locale.WithLocale(cmd.Context(), raw)
			if raw != "" && locale.FromCtx(ctx) == locale.Default {
				slog.Debug("using default locale", "requested", raw, "locale", locale.Default)
			}
			cmd.SetContext(ctx)

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr.")
	rootCmd.PersistentFlags().StringVar(&raw, "locale", "", "Locale used to format numbers, e.g. nl-NL.")

	rootCmd.AddCommand(newPrintCmd(fs), newBumpCmd(fs), newCheckCmd())

	return rootCmd
}

// newPrintCmd prints one field of every record in a file.
func newPrintCmd(fs afero.Fs) *cobra.Command {
	var (
		index int
		typ   string
	)

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print one field of every record in FILE.",
		Long: `Print one field of every record in FILE.

Records are sequences of [int, string, bool]. The field is selected by
position, by type or by both, in which case the type must match the position.

# Print the labels.
$ selectiter print ./counts.yaml --index 1

# Print the flags.
$ selectiter print ./counts.yaml --type bool
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if index < 0 && typ == "" {
				return errors.New("one of --index or --type is required")
			}

			rows, err := records.Load[row](fs, args[0])
			if err != nil {
				return err
			}
			slog.Debug("loaded records", "file", args[0], "count", len(rows))

			if typ == "" {
				t, err := fieldType(index)
				if err != nil {
					return err
				}
				typ = t
			}

			w := cmd.OutOrStdout()
			switch typ {
			case "int":
				return printColumn[int](cmd.Context(), w, rows, index)
			case "string":
				return printColumn[string](cmd.Context(), w, rows, index)
			case "bool":
				return printColumn[bool](cmd.Context(), w, rows, index)
			}

			return fmt.Errorf("unsupported field type %q, expected int, string or bool", typ)
		},
	}

	cmd.Flags().IntVar(&index, "index", -1, "Position of the field.")
	cmd.Flags().StringVar(&typ, "type", "", "Type of the field: int, string or bool.")

	return cmd
}

// newBumpCmd adds to the int field of every record and writes the file back.
func newBumpCmd(fs afero.Fs) *cobra.Command {
	var (
		index int
		by    int
	)

	cmd := &cobra.Command{
		Use:   "bump FILE",
		Short: "Add a number to an int field of every record in FILE.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := records.Load[row](fs, args[0])
			if err != nil {
				return err
			}

			field, err := resolve[int](index)
			if err != nil {
				return err
			}

			it := selectiter.NewRandom(field, cursors.Begin(rows))
			for n := range it.Refs(cursors.End(rows)) {
				*n += by
			}
			slog.Debug("bumped records", "file", args[0], "field", field, "count", len(rows))

			return records.Save(fs, args[0], rows)
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Position of the int field.")
	cmd.Flags().IntVar(&by, "by", 1, "Amount to add.")

	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check DIR",
		Short: "Report field selections in the Go source in DIR that can never resolve.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := check.Fields(args[0])
			if err != nil {
				return fmt.Errorf("error checking source: %w", err)
			}

			for _, f := range findings {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}

			if len(findings) > 0 {
				return fmt.Errorf("%d field selections can not resolve", len(findings))
			}

			slog.Debug("no findings", "dir", args[0])

			return nil
		},
	}
}

func printColumn[F any](ctx context.Context, w io.Writer, rows []row, index int) error {
	field, err := resolve[F](index)
	if err != nil {
		return err
	}

	p := locale.Printer(ctx)
	it := selectiter.NewRandom(field, cursors.Begin(rows))
	for v := range it.Values(cursors.End(rows)) {
		if _, err := p.Fprintf(w, "%v\n", v); err != nil {
			return err
		}
	}

	return nil
}

// resolve selects the F field of row, by position when index is not negative.
func resolve[F any](index int) (selectiter.Field[row, F], error) {
	var (
		field selectiter.Field[row, F]
		err   error
	)

	if index < 0 {
		field, err = selectiter.FieldOf[row, F]()
	} else {
		field, err = selectiter.FieldAt[row, F](index)
	}
	if err != nil {
		return field, explain(err, index, reflect.TypeFor[F]())
	}

	return field, nil
}

// fieldType returns the --type name of the field at index.
func fieldType(index int) (string, error) {
	l, err := typelist.Of(reflect.TypeFor[row]())
	if err != nil {
		return "", err
	}

	t, err := l.Field(index)
	if err != nil {
		return "", explain(err, index, nil)
	}

	return t.String(), nil
}

// explain adds the record layout to a resolution error, with the offending fields highlighted on a terminal.
func explain(err error, index int, target reflect.Type) error {
	l, lerr := typelist.Of(reflect.TypeFor[row]())
	if lerr != nil {
		return err
	}

	var marked []int
	switch {
	case errors.Is(err, selectiter.ErrAmbiguousType):
		marked = l.Positions(target)
	case errors.Is(err, selectiter.ErrFieldType):
		marked = []int{index}
	}

	return fmt.Errorf("%w in %s", err, layout(l, marked, term.IsTerminal(int(os.Stdout.Fd()))))
}

func layout(l *typelist.List, marked []int, highlight bool) string {
	parts := make([]string, l.Len())
	for i, t := range l.Types {
		parts[i] = t.String()
	}

	if highlight {
		for _, i := range marked {
			if i >= 0 && i < len(parts) {
				parts[i] = fmt.Sprintf("\033[4m\033[1;31m%s\033[0m", parts[i])
			}
		}
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
