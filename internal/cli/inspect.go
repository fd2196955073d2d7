package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"readability/internal/adapter/analyzer"
	"readability/internal/adapter/segmenter"
	"readability/internal/port"
)

var (
	inspectSegmenter string
	wordsCount       bool
	syllablesTrace   bool
)

var sentencesCmd = &cobra.Command{
	Use:   "sentences [file]",
	Short: "Print the sentences of a text, one per line",
	Long: `Segment a file, or stdin, into sentences and print one per line with
whitespace collapsed.

Examples:
  readability sentences essay.txt
  echo "Mr. Smith left. He said hi." | readability sentences --segmenter punctuation`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSentences,
}

var wordsCmd = &cobra.Command{
	Use:   "words [file]",
	Short: "Print the word tokens of a text with their syllable counts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWords,
}

var syllablesCmd = &cobra.Command{
	Use:   "syllables WORD...",
	Short: "Estimate syllables for individual words",
	Long: `Estimate the syllable count of each word. With --trace, the normalized
word is printed with '*' at every counted boundary.

Examples:
  readability syllables banana computer
  readability syllables --trace information`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSyllables,
}

func init() {
	rootCmd.AddCommand(sentencesCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(syllablesCmd)

	sentencesCmd.Flags().StringVar(&inspectSegmenter, "segmenter", "", "sentence segmenter: uax29 or punctuation (default from config)")
	wordsCmd.Flags().StringVar(&inspectSegmenter, "segmenter", "", "sentence segmenter: uax29 or punctuation (default from config)")
	wordsCmd.Flags().BoolVarP(&wordsCount, "count", "c", false, "print only the totals")
	syllablesCmd.Flags().BoolVar(&syllablesTrace, "trace", false, "show syllable boundaries")
}

func runSentences(cmd *cobra.Command, args []string) error {
	text, err := readSingleInput(args)
	if err != nil {
		return err
	}

	seg, err := inspectSegmenterFor()
	if err != nil {
		return err
	}

	for i, sentence := range seg.Segment(text) {
		fmt.Printf("%4d  %s\n", i+1, sentence)
	}
	return nil
}

func runWords(cmd *cobra.Command, args []string) error {
	text, err := readSingleInput(args)
	if err != nil {
		return err
	}

	c, err := withOverrides(GetConfig(), inspectSegmenter, "")
	if err != nil {
		return err
	}
	scorer, _, err := buildScorer(c)
	if err != nil {
		return err
	}
	a := scorer.Analyze(text)

	if !wordsCount {
		for i, w := range a.Words {
			fmt.Printf("%-24s %d\n", w, a.Syllables[i])
		}
		fmt.Println()
	}
	fmt.Printf("Sentences: %d  Words: %d  Syllables: %d  Complex: %d\n",
		a.TotalSentences(), a.TotalWords(), a.TotalSyllables(), a.ComplexWords())
	return nil
}

func runSyllables(cmd *cobra.Command, args []string) error {
	seg, err := inspectSegmenterFor()
	if err != nil {
		return err
	}
	words := analyzer.NewWordExtractor(seg)

	var marked string
	estimator := analyzer.NewSyllableEstimator()
	estimator.Trace = func(word, m string) {
		marked = m
		log.Debug().Str("word", word).Str("boundaries", m).Msg("syllable trace")
	}

	for _, arg := range args {
		tokens := words.Extract(arg)
		if len(tokens) == 0 {
			log.Warn().Str("input", arg).Msg("no word characters, skipping")
			continue
		}
		for _, token := range tokens {
			n := estimator.Estimate(token)
			if syllablesTrace {
				fmt.Printf("%-24s %d  %s\n", token, n, marked)
			} else {
				fmt.Printf("%-24s %d\n", token, n)
			}
		}
	}
	return nil
}

func inspectSegmenterFor() (port.Segmenter, error) {
	name := GetConfig().Analyze.Segmenter
	if inspectSegmenter != "" {
		name = inspectSegmenter
	}
	return segmenter.New(name)
}

func readSingleInput(args []string) (string, error) {
	text, _, err := readInput(inputPaths(args)[0])
	return text, err
}
