package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"readability/internal/adapter/extract"
	"readability/internal/domain"
	"readability/internal/port"
)

// Reporter scores one text. *Scorer and cache.CachedReporter implement it.
type Reporter interface {
	Report(text string) domain.Report
}

// ProgressFunc is called after each file is handled.
type ProgressFunc func(processed, total int, currentFile string)

// ScanUseCase scores every matching file under a directory and keeps the
// reports in a store so unchanged files are not scored again.
type ScanUseCase struct {
	store    port.ReportStore
	walker   port.FileWalker
	reader   port.FileReader
	reporter Reporter
	workers  int
}

// NewScanUseCase creates a new scan use case. workers <= 0 uses one worker
// per CPU.
func NewScanUseCase(
	store port.ReportStore,
	walker port.FileWalker,
	reader port.FileReader,
	reporter Reporter,
	workers int,
) *ScanUseCase {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ScanUseCase{
		store:    store,
		walker:   walker,
		reader:   reader,
		reporter: reporter,
		workers:  workers,
	}
}

// ScanResult contains the results of a scan.
type ScanResult struct {
	FilesScored  int
	FilesSkipped int
	FilesDeleted int
	Reports      []domain.Report // sorted by path
	Stats        domain.Stats
	Errors       []string
}

type scanJob struct {
	file port.FileInfo
	doc  domain.Document
}

type scanOutcome struct {
	job    scanJob
	report domain.Report
	err    error
}

// Scan scores the files under root.
func (u *ScanUseCase) Scan(root string, progress ProgressFunc) (*ScanResult, error) {
	result := &ScanResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existingDocs, err := u.store.ListDocs()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing docs: %w", err)
	}
	existingMap := make(map[string]domain.Document, len(existingDocs))
	for _, doc := range existingDocs {
		existingMap[doc.Path] = doc
	}

	seenPaths := make(map[string]bool, len(files))
	processed := 0
	advance := func(path string) {
		processed++
		if progress != nil {
			progress(processed, len(files), path)
		}
	}

	var jobs []scanJob
	for _, file := range files {
		seenPaths[file.Path] = true

		if existing, ok := existingMap[file.Path]; ok && existing.ModTime.Unix() >= file.ModTime {
			stored, err := u.store.GetReport(existing.ID)
			if err == nil {
				log.Debug().Str("path", file.Path).Msg("unchanged, reusing stored report")
				result.Reports = append(result.Reports, stored)
				result.FilesSkipped++
				advance(file.Path)
				continue
			}
			log.Debug().Err(err).Str("path", file.Path).Msg("stored report unreadable, rescoring")
		}

		jobs = append(jobs, scanJob{
			file: file,
			doc: domain.Document{
				ID:      generateDocID(file.Path),
				Path:    file.Path,
				ModTime: time.Unix(file.ModTime, 0),
				Format:  extract.ForPath(file.Path).Format(),
			},
		})
	}

	for outcome := range u.scoreAll(jobs) {
		path := outcome.job.file.Path
		if outcome.err != nil {
			log.Warn().Err(outcome.err).Str("path", path).Msg("failed to score file")
			result.Errors = append(result.Errors, fmt.Sprintf("failed to score %s: %v", path, outcome.err))
			advance(path)
			continue
		}
		if err := u.store.PutReport(outcome.job.doc, outcome.report); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to store %s: %v", path, err))
			advance(path)
			continue
		}
		log.Debug().Str("path", path).Int("words", outcome.report.Words).Msg("scored")
		result.Reports = append(result.Reports, outcome.report)
		result.FilesScored++
		advance(path)
	}

	for path, doc := range existingMap {
		if seenPaths[path] {
			continue
		}
		if err := u.store.DeleteDoc(doc.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			continue
		}
		result.FilesDeleted++
	}

	sort.Slice(result.Reports, func(i, j int) bool {
		return result.Reports[i].Path < result.Reports[j].Path
	})
	result.Stats = Aggregate(result.Reports)
	if err := u.store.UpdateStats(result.Stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	return result, nil
}

// scoreAll scores jobs on the worker pool. The returned channel is closed
// once every job has produced an outcome.
func (u *ScanUseCase) scoreAll(jobs []scanJob) <-chan scanOutcome {
	queue := make(chan scanJob, len(jobs))
	outcomes := make(chan scanOutcome, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < u.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				report, err := u.scoreFile(job)
				outcomes <- scanOutcome{job: job, report: report, err: err}
			}
		}()
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	return outcomes
}

func (u *ScanUseCase) scoreFile(job scanJob) (domain.Report, error) {
	content, err := u.reader.ReadFile(job.file.Path)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to read file: %w", err)
	}

	extractor := extract.ForPath(job.file.Path)
	text, err := extractor.Extract(content)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to extract text: %w", err)
	}

	report := u.reporter.Report(text)
	report.Path = job.file.Path
	report.Format = extractor.Format()
	return report, nil
}

// Aggregate sums reports into corpus stats. MeanFlesch averages the defined
// Flesch scores only.
func Aggregate(reports []domain.Report) domain.Stats {
	stats := domain.Stats{TotalDocs: len(reports)}

	fleschSum := 0.0
	for _, r := range reports {
		stats.TotalSentences += r.Sentences
		stats.TotalWords += r.Words
		stats.TotalSyllables += r.Syllables
		if r.Flesch != nil {
			fleschSum += *r.Flesch
			stats.ScoredDocs++
		}
	}
	if stats.ScoredDocs > 0 {
		stats.MeanFlesch = fleschSum / float64(stats.ScoredDocs)
	}

	return stats
}

// generateDocID creates a stable ID for a document based on its path.
func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
