package memstore

import (
	"fmt"
	"sort"
	"sync"

	"readability/internal/domain"
)

// MemoryStore is a port.ReportStore that keeps everything in process memory.
// Nothing survives Close.
type MemoryStore struct {
	mu      sync.RWMutex
	docs    map[string]domain.Document
	reports map[string]domain.Report
	stats   domain.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:    make(map[string]domain.Document),
		reports: make(map[string]domain.Report),
	}
}

func (s *MemoryStore) PutReport(doc domain.Document, report domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	s.reports[doc.ID] = report
	return nil
}

func (s *MemoryStore) GetReport(docID string) (domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[docID]
	if !ok {
		return domain.Report{}, fmt.Errorf("report not found: %s", docID)
	}
	return report, nil
}

func (s *MemoryStore) GetDoc(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("document not found: %s", id)
	}
	return doc, nil
}

func (s *MemoryStore) DeleteDoc(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	delete(s.reports, id)
	return nil
}

// ListDocs returns documents sorted by path.
func (s *MemoryStore) ListDocs() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// Reports returns every stored report sorted by path.
func (s *MemoryStore) Reports() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reports := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Path < reports[j].Path })
	return reports
}

func (s *MemoryStore) GetStats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, nil
}

func (s *MemoryStore) UpdateStats(stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	return nil
}

// Clear drops all documents, reports and stats.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[string]domain.Document)
	s.reports = make(map[string]domain.Report)
	s.stats = domain.Stats{}
}

func (s *MemoryStore) Close() error {
	return nil
}
