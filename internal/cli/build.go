package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"readability/config"
	"readability/internal/adapter/analyzer"
	"readability/internal/adapter/cache"
	"readability/internal/adapter/extract"
	"readability/internal/adapter/fs"
	"readability/internal/adapter/segmenter"
	"readability/internal/port"
	"readability/internal/usecase"
)

const stdinName = "-"

// withOverrides returns a copy of c with any non-empty flag values applied.
func withOverrides(c *config.Config, segmenterName, precision string) (*config.Config, error) {
	out := *c
	if segmenterName != "" {
		out.Analyze.Segmenter = segmenterName
	}
	if precision != "" {
		out.Analyze.Precision = precision
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func buildScorer(c *config.Config) (*usecase.Scorer, port.Segmenter, error) {
	seg, err := segmenter.New(c.Analyze.Segmenter)
	if err != nil {
		return nil, nil, err
	}
	precision, err := usecase.ParsePrecision(c.Analyze.Precision)
	if err != nil {
		return nil, nil, err
	}

	scorer := usecase.NewScorer(seg, analyzer.NewWordExtractor(seg), analyzer.NewSyllableEstimator(), precision)
	if c.Analyze.DetectLanguage {
		scorer.WithLanguageDetector(analyzer.NewLanguageDetector())
	}
	return scorer, seg, nil
}

// buildReporter wraps scorer in a report cache unless caching is disabled.
func buildReporter(c *config.Config, scorer *usecase.Scorer) (usecase.Reporter, *cache.ReportCache) {
	if c.Cache.MaxEntries <= 0 {
		return scorer, nil
	}
	rc := cache.NewReportCache(c.Cache.MaxEntries, c.Cache.TTL)
	return cache.NewCachedReporter(scorer, rc), rc
}

// readInput returns the prose of path and its format. "-" reads stdin as
// plain text.
func readInput(path string) (string, string, error) {
	if path == stdinName {
		text, err := fs.ReadFrom(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return text, extract.NewPlain().Format(), nil
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	extractor := extract.ForPath(path)
	text, err := extractor.Extract(content)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, extractor.Format(), nil
}

// inputPaths maps no arguments to stdin.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func logCacheStats(rc *cache.ReportCache) {
	if rc == nil {
		return
	}
	hits, misses := rc.Stats()
	log.Debug().Uint64("hits", hits).Uint64("misses", misses).Int("entries", rc.Size()).Msg("report cache")
}
