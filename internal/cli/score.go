package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"readability/internal/adapter/analyzer"
	"readability/internal/adapter/fs"
	"readability/internal/domain"
)

var (
	scoreFormula   string
	scoreJSON      bool
	scoreOutput    string
	scorePrecision string
	scoreSegmenter string
)

var scoreCmd = &cobra.Command{
	Use:   "score [file...]",
	Short: "Score text with Flesch Reading Ease and SMOG",
	Long: `Score one or more files, or stdin when no file (or "-") is given.
Markdown and HTML files are reduced to their prose first.

SMOG needs at least 30 sentences; shorter texts report insufficient data.

Examples:
  readability score essay.txt
  readability score --formula smog --precision float book.md
  echo "The cat sat on the mat. It was happy." | readability score --json`,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreFormula, "formula", "f", "all", "formula to print: flesch, smog or all")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output as JSON")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "", "write the result to a file instead of stdout")
	scoreCmd.Flags().StringVar(&scorePrecision, "precision", "", "ratio division: truncate or float (default from config)")
	scoreCmd.Flags().StringVar(&scoreSegmenter, "segmenter", "", "sentence segmenter: uax29 or punctuation (default from config)")
}

func runScore(cmd *cobra.Command, args []string) error {
	switch scoreFormula {
	case "flesch", "smog", "all":
	default:
		return fmt.Errorf("unknown formula: %s", scoreFormula)
	}

	c, err := withOverrides(GetConfig(), scoreSegmenter, scorePrecision)
	if err != nil {
		return err
	}
	scorer, _, err := buildScorer(c)
	if err != nil {
		return err
	}
	reporter, rc := buildReporter(c, scorer)

	var reports []domain.Report
	for _, path := range inputPaths(args) {
		text, format, err := readInput(path)
		if err != nil {
			return err
		}

		report := reporter.Report(text)
		report.Path = path
		if path == stdinName {
			report.Path = "<stdin>"
		}
		report.Format = format

		if report.Language != "" && !analyzer.IsEnglish(report.Language) {
			log.Warn().Str("path", report.Path).Str("language", report.Language).
				Msg("input does not look like English; syllable estimates will be off")
		}
		reports = append(reports, report)
	}
	logCacheStats(rc)

	var out strings.Builder
	if scoreJSON || c.Report.Output == "json" {
		if err := writeJSONReports(&out, reports); err != nil {
			return err
		}
	} else {
		for i, r := range reports {
			if i > 0 {
				out.WriteString("\n")
			}
			writeTextReport(&out, r, scoreFormula)
		}
	}

	if scoreOutput != "" {
		if err := fs.WriteFile(scoreOutput, out.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Info().Str("path", scoreOutput).Int("reports", len(reports)).Msg("wrote scores")
		return nil
	}
	_, err = io.WriteString(os.Stdout, out.String())
	return err
}

// writeJSONReports writes a single object for one report and an array
// otherwise.
func writeJSONReports(w io.Writer, reports []domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

func writeTextReport(w io.Writer, r domain.Report, formula string) {
	fmt.Fprintf(w, "%s (%s)\n", r.Path, r.Format)
	fmt.Fprintf(w, "  Sentences:      %d\n", r.Sentences)
	fmt.Fprintf(w, "  Words:          %d\n", r.Words)
	fmt.Fprintf(w, "  Syllables:      %d\n", r.Syllables)
	fmt.Fprintf(w, "  Complex words:  %d\n", r.ComplexWords)
	if r.Language != "" {
		fmt.Fprintf(w, "  Language:       %s\n", r.Language)
	}
	if formula == "flesch" || formula == "all" {
		fmt.Fprintf(w, "  Flesch:         %s\n", formatFlesch(r))
	}
	if formula == "smog" || formula == "all" {
		fmt.Fprintf(w, "  SMOG:           %s\n", formatSMOG(r))
	}
}

func formatFlesch(r domain.Report) string {
	if r.Flesch == nil {
		return "undefined (no words or sentences)"
	}
	return fmt.Sprintf("%.3f", *r.Flesch)
}

func formatSMOG(r domain.Report) string {
	if !r.SMOGDefined() && r.Sentences >= domain.SMOGMinSentences {
		return "undefined (no words)"
	}
	if !r.SMOGDefined() {
		return fmt.Sprintf("insufficient data (%d of %d sentences)", r.Sentences, domain.SMOGMinSentences)
	}
	return fmt.Sprintf("%.3f", r.SMOG)
}
