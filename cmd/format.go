package cmd

import (
	"fmt"
	"os"

	"github.com/helmcode/schema-report/pkg/formatter"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	formatName          string
	formatColor         bool
	formatPretty        bool
	formatCompact       bool
	formatTOC           bool
	formatHeadingLevel  int
	formatStructured    bool
	formatSchemaContext bool
	formatMaxErrors     int
	formatOptionsFile   string
	formatVerbose       bool
)

func NewFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format FILE",
		Short: "Render a validation error report in a chosen format",
		Long: `Read an error-record list produced by the validation engine and render
it in one of the supported output formats.

Examples:
  # Human-readable report with color
  schema-report format errors.json

  # Bordered table, first ten errors only
  schema-report format errors.json -f table --max-errors 10

  # Markdown report with a table of contents
  schema-report format errors.json -f markdown --toc

  # Key=value tokens for a prompt template
  schema-report format errors.json -f llm --structured`,
		Args: cobra.ExactArgs(1),
		RunE: runFormat,
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "human", "Output format (human, json, table, markdown, llm)")
	cmd.Flags().BoolVar(&formatColor, "color", false, "Force ANSI color in human output (default: TTY autodetect)")
	cmd.Flags().BoolVar(&formatPretty, "pretty", false, "Indent json output")
	cmd.Flags().BoolVar(&formatCompact, "compact", false, "Drop border rows from table output")
	cmd.Flags().BoolVar(&formatTOC, "toc", false, "Emit a table of contents in markdown output")
	cmd.Flags().IntVar(&formatHeadingLevel, "heading-level", 0, "Markdown heading depth, 1-6 (default 2)")
	cmd.Flags().BoolVar(&formatStructured, "structured", false, "Emit key=value tokens in llm output")
	cmd.Flags().BoolVar(&formatSchemaContext, "schema-context", true, "Include schema paths in llm output")
	cmd.Flags().IntVar(&formatMaxErrors, "max-errors", 0, "Render only the first N errors (0 = unbounded)")
	cmd.Flags().StringVar(&formatOptionsFile, "options", "", "YAML file of renderer options, overridden by explicit flags")
	cmd.Flags().BoolVarP(&formatVerbose, "verbose", "v", false, "Verbose diagnostics on stderr")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	configureLogging(formatVerbose)

	records, err := readRecords(args[0])
	if err != nil {
		return err
	}
	logrus.Debugf("loaded %d error record(s) from %s", len(records), args[0])

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	out, err := formatter.Render(records, formatter.Format(formatName), opts)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// buildOptions merges renderer options by override: defaults, then the
// options file when given, then explicitly set flags.
func buildOptions(cmd *cobra.Command) (formatter.Options, error) {
	var opts formatter.Options

	if formatOptionsFile != "" {
		data, err := os.ReadFile(formatOptionsFile)
		if err != nil {
			return formatter.Options{}, fmt.Errorf("read options file: %w", err)
		}
		raw := map[string]any{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return formatter.Options{}, fmt.Errorf("parse options file: %w", err)
		}
		opts, err = formatter.ParseOptions(raw)
		if err != nil {
			return formatter.Options{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		opts.Color = formatColor
	} else if formatOptionsFile == "" {
		// Color is cosmetic; without an explicit choice follow the terminal.
		opts.Color = isatty.IsTerminal(os.Stdout.Fd())
	}
	if flags.Changed("pretty") {
		opts.Pretty = formatPretty
	}
	if flags.Changed("compact") {
		opts.Compact = formatCompact
	}
	if flags.Changed("toc") {
		opts.IncludeTOC = formatTOC
	}
	if flags.Changed("heading-level") {
		opts.HeadingLevel = formatHeadingLevel
	}
	if flags.Changed("structured") {
		opts.Structured = formatStructured
	}
	if flags.Changed("schema-context") {
		ctx := formatSchemaContext
		opts.IncludeSchemaContext = &ctx
	}
	if flags.Changed("max-errors") {
		opts.MaxErrors = formatMaxErrors
	}
	return opts, nil
}

func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range formatter.AvailableFormats() {
				fmt.Println(f)
			}
		},
	}
}
