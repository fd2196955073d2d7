package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"readability/config"
	"readability/internal/adapter/fs"
	"readability/internal/adapter/memstore"
	"readability/internal/adapter/store"
	"readability/internal/domain"
	"readability/internal/port"
	"readability/internal/usecase"
)

var (
	scanJSON    bool
	scanRebuild bool
	scanDryRun  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Score every document under a directory",
	Long: `Score the text, Markdown and HTML files in a directory. Reports are
stored in .readability/scores.db within the target directory, and files
that have not changed since the last scan are not scored again.

Examples:
  readability scan .                 # Scan current directory
  readability scan docs --json       # Print reports and stats as JSON
  readability scan . --rebuild       # Discard stored reports first
  readability scan . --dry-run       # Score without touching .readability`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	scanCmd.Flags().BoolVar(&scanRebuild, "rebuild", false, "clear stored reports before scanning")
	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false, "score everything in memory without reading or writing the store")
}

type scanOutput struct {
	Reports []domain.Report `json:"reports"`
	Stats   domain.Stats    `json:"stats"`
	Scored  int             `json:"scored"`
	Skipped int             `json:"skipped"`
	Deleted int             `json:"deleted"`
	Errors  []string        `json:"errors,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	asJSON := scanJSON || cfg.Report.Output == "json"

	var st port.ReportStore
	var dbPath string
	if scanDryRun {
		st = memstore.NewMemoryStore()
	} else {
		dbPath = config.StoreDBPath(path)
		bolt, err := openScanStore(path, cfg, asJSON)
		if err != nil {
			return err
		}
		st = bolt
	}
	defer st.Close()

	scorer, _, err := buildScorer(cfg)
	if err != nil {
		return err
	}
	reporter, rc := buildReporter(cfg, scorer)

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	scanUC := usecase.NewScanUseCase(st, walker, fs.Reader{}, reporter, cfg.Scan.Workers)

	statusf(asJSON, "Scanning %s...\n", path)

	var progressCallback usecase.ProgressFunc
	if !asJSON {
		progressCallback = newProgress()
	}

	result, err := scanUC.Scan(path, progressCallback)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	logCacheStats(rc)

	// Record schema version and config hash after a successful scan.
	if bolt, ok := st.(*store.BoltStore); ok {
		if err := bolt.Migrate(cfg); err != nil {
			return fmt.Errorf("failed to update schema info: %w", err)
		}
	}

	if asJSON {
		return printScanJSON(result)
	}
	printScanText(path, dbPath, result)
	return nil
}

// openScanStore opens the bbolt store under path and applies any pending
// migration or rebuild.
func openScanStore(path string, cfg *config.Config, asJSON bool) (*store.BoltStore, error) {
	if err := config.EnsureStateDir(path); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", config.StateDirName, err)
	}

	st, err := store.NewBoltStore(config.StoreDBPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open score store: %w", err)
	}

	migrationResult, err := st.CheckMigration(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}

	switch {
	case scanRebuild || migrationResult.NeedsRebuild:
		reason := migrationResult.Reason
		if scanRebuild {
			reason = "requested with --rebuild"
		}
		statusf(asJSON, "Rescoring everything: %s\n", reason)
		if err := st.Clear(); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to clear store: %w", err)
		}
	case migrationResult.NeedsMigration:
		statusf(asJSON, "Running schema migration: %s\n", migrationResult.Reason)
		if err := st.Migrate(cfg); err != nil {
			st.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return st, nil
}

// newProgress returns a progress callback that creates the bar once the total
// is known.
func newProgress() usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	return func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scoring[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Scoring[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}
}

func printScanJSON(result *usecase.ScanResult) error {
	out := scanOutput{
		Reports: result.Reports,
		Stats:   result.Stats,
		Scored:  result.FilesScored,
		Skipped: result.FilesSkipped,
		Deleted: result.FilesDeleted,
		Errors:  result.Errors,
	}
	if out.Reports == nil {
		out.Reports = []domain.Report{}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printScanText(root, dbPath string, result *usecase.ScanResult) {
	if len(result.Reports) > 0 {
		fmt.Printf("\n%-40s %10s %10s %8s\n", "FILE", "WORDS", "FLESCH", "SMOG")
		for _, r := range result.Reports {
			rel, err := filepath.Rel(root, r.Path)
			if err != nil {
				rel = r.Path
			}
			flesch := "-"
			if r.Flesch != nil {
				flesch = fmt.Sprintf("%.2f", *r.Flesch)
			}
			smog := "-"
			if r.SMOGDefined() {
				smog = fmt.Sprintf("%.2f", r.SMOG)
			}
			fmt.Printf("%-40s %10d %10s %8s\n", filepath.ToSlash(rel), r.Words, flesch, smog)
		}
	}

	fmt.Printf("\nScan complete:\n")
	fmt.Printf("  Files scored:   %d\n", result.FilesScored)
	fmt.Printf("  Files skipped:  %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Files deleted:  %d (removed)\n", result.FilesDeleted)
	fmt.Printf("  Total words:    %d\n", result.Stats.TotalWords)
	if result.Stats.ScoredDocs > 0 {
		fmt.Printf("  Mean Flesch:    %.2f (%d of %d files)\n",
			result.Stats.MeanFlesch, result.Stats.ScoredDocs, result.Stats.TotalDocs)
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if dbPath == "" {
		fmt.Printf("\nDry run: scores were not stored\n")
		return
	}
	fmt.Printf("\nScores stored at: %s\n", dbPath)
}

// statusf prints progress notes to stdout, or to stderr when stdout carries
// JSON.
func statusf(asJSON bool, format string, args ...any) {
	if asJSON {
		fmt.Fprintf(os.Stderr, format, args...)
		return
	}
	fmt.Printf(format, args...)
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
