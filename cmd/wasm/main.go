//go:build js && wasm

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"syscall/js"
	"time"

	"readability/internal/adapter/analyzer"
	"readability/internal/adapter/extract"
	"readability/internal/adapter/memstore"
	"readability/internal/adapter/segmenter"
	"readability/internal/domain"
	"readability/internal/usecase"
)

var (
	store     *memstore.MemoryStore
	words     *analyzer.WordExtractor
	syllables *analyzer.SyllableEstimator
	scorers   map[usecase.Precision]*usecase.Scorer
)

func init() {
	store = memstore.NewMemoryStore()
	seg := segmenter.NewUAX29()
	words = analyzer.NewWordExtractor(seg)
	syllables = analyzer.NewSyllableEstimator()
	scorers = map[usecase.Precision]*usecase.Scorer{
		usecase.Truncate: usecase.NewScorer(seg, words, syllables, usecase.Truncate),
		usecase.Float:    usecase.NewScorer(seg, words, syllables, usecase.Float),
	}
}

func main() {
	c := make(chan struct{})

	js.Global().Set("readabilityScore", js.FuncOf(scoreText))
	js.Global().Set("readabilityAdd", js.FuncOf(addDocument))
	js.Global().Set("readabilitySyllables", js.FuncOf(estimateSyllables))
	js.Global().Set("readabilityClear", js.FuncOf(clearDocuments))
	js.Global().Set("readabilityStats", js.FuncOf(getStats))

	<-c
}

func scoreText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: readabilityScore(text, [precision])")
	}

	precision := usecase.Truncate
	if len(args) > 1 {
		p, err := usecase.ParsePrecision(args[1].String())
		if err != nil {
			return makeError(err.Error())
		}
		precision = p
	}

	return makeResult(scorers[precision].Report(args[0].String()))
}

func addDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: readabilityAdd(filename, content)")
	}

	filename := args[0].String()
	content := args[1].String()

	extractor := extract.ForPath(filename)
	text, err := extractor.Extract(content)
	if err != nil {
		return makeError("extraction failed: " + err.Error())
	}

	report := scorers[usecase.Truncate].Report(text)
	report.Path = filename
	report.Format = extractor.Format()

	doc := domain.Document{
		ID:      generateDocID(filename),
		Path:    filename,
		ModTime: time.Now(),
		Format:  extractor.Format(),
	}
	if err := store.PutReport(doc, report); err != nil {
		return makeError("store failed: " + err.Error())
	}
	store.UpdateStats(usecase.Aggregate(store.Reports()))

	return makeResult(report)
}

func estimateSyllables(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: readabilitySyllables(text)")
	}

	type estimate struct {
		Word      string `json:"word"`
		Syllables int    `json:"syllables"`
		Trace     string `json:"trace"`
	}

	var marked string
	estimator := &analyzer.SyllableEstimator{Trace: func(_, m string) { marked = m }}

	var out []estimate
	for _, w := range words.Extract(args[0].String()) {
		n := estimator.Estimate(w)
		out = append(out, estimate{Word: w, Syllables: n, Trace: marked})
	}

	return makeResult(map[string]interface{}{
		"words": out,
	})
}

func clearDocuments(this js.Value, args []js.Value) interface{} {
	store.Clear()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func getStats(this js.Value, args []js.Value) interface{} {
	stats, _ := store.GetStats()
	reports := store.Reports()

	filenames := make([]string, len(reports))
	for i, r := range reports {
		filenames[i] = r.Path
	}

	return makeResult(map[string]interface{}{
		"stats": stats,
		"files": filenames,
	})
}

func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data interface{}) interface{} {
	result, err := json.Marshal(data)
	if err != nil {
		return makeError(err.Error())
	}
	return string(result)
}
