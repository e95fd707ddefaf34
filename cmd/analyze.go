package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/schema-report/pkg/analyzer"
	"github.com/helmcode/schema-report/pkg/model"
	"github.com/helmcode/schema-report/pkg/parser"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	analyzeOutputFormat string
	analyzeVerbose      bool
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Summarize a validation error report",
		Long: `Read an error-record list produced by the validation engine and print
the derived analysis: category and severity histograms, recurring
patterns, the most common paths, and prioritized recommendations.

Examples:
  # Summarize a saved validation report
  schema-report analyze errors.json

  # Read from stdin, machine-readable output
  validate document.json | schema-report analyze - -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Verbose diagnostics on stderr")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	configureLogging(analyzeVerbose)

	records, err := readRecords(args[0])
	if err != nil {
		return err
	}
	logrus.Debugf("loaded %d error record(s) from %s", len(records), args[0])

	summary := analyzer.Analyze(records)

	switch analyzeOutputFormat {
	case "json":
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		fmt.Print(string(out))
	case "human":
		displaySummary(summary, analyzer.Summarize(records))
	default:
		return fmt.Errorf("unsupported output format: %s (supported: human, json, yaml)", analyzeOutputFormat)
	}
	return nil
}

// displaySummary prints the colorized human view of one analysis.
func displaySummary(summary *model.Summary, digest string) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	cyan.Println("📋 VALIDATION ANALYSIS")
	fmt.Printf("   Total errors: %d\n\n", summary.TotalErrors)

	if summary.TotalErrors == 0 {
		color.New(color.FgGreen, color.Bold).Println("✓ No validation errors found")
		return
	}

	white.Println("📊 CATEGORIES:")
	for _, cat := range model.Categories() {
		if n := summary.Categories[cat]; n > 0 {
			fmt.Printf("   %-22s %d\n", cat, n)
		}
	}
	fmt.Println()

	white.Println("🚦 SEVERITIES:")
	for _, level := range model.Severities() {
		if n := summary.Severities[level]; n > 0 {
			severityColor(level).Printf("   %-10s", level)
			fmt.Printf(" %d\n", n)
		}
	}
	fmt.Println()

	if len(summary.Patterns) > 0 {
		yellow.Println("🔁 PATTERNS:")
		for _, tag := range summary.Patterns {
			fmt.Printf("   - %s\n", tag)
		}
		fmt.Println()
	}

	if len(summary.MostCommonPaths) > 0 {
		white.Println("📍 MOST COMMON PATHS:")
		for i, pc := range summary.MostCommonPaths {
			if i == 5 {
				break
			}
			path := pc.Path
			if path == "" {
				path = "(root)"
			}
			fmt.Printf("   %-40s %d\n", path, pc.Count)
		}
		fmt.Println()
	}

	if len(summary.Recommendations) > 0 {
		cyan.Println("💡 RECOMMENDATIONS:")
		for i, rec := range summary.Recommendations {
			fmt.Printf("   %d. %s\n", i+1, rec)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Println(digest)
}

func severityColor(level model.Severity) *color.Color {
	switch level {
	case model.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityHigh:
		return color.New(color.FgRed)
	case model.SeverityMedium:
		return color.New(color.FgYellow)
	case model.SeverityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

// readRecords loads an error-record list from a file, or stdin for "-".
func readRecords(path string) ([]model.ValidationError, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read error records: %w", err)
	}
	return parser.ParseRecords(data)
}

func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
