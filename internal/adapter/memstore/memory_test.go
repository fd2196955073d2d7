package memstore

import (
	"testing"

	"readability/internal/domain"
	"readability/internal/port"
)

var _ port.ReportStore = (*MemoryStore)(nil)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	s := NewMemoryStore()
	flesch := 118.175

	doc := domain.Document{ID: "a", Path: "/docs/a.txt", Format: "text"}
	if err := s.PutReport(doc, domain.Report{Path: doc.Path, Words: 9, Flesch: &flesch}); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetReport("a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Words != 9 || got.Flesch == nil || *got.Flesch != flesch {
		t.Errorf("unexpected report: %+v", got)
	}

	if err := s.DeleteDoc("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetReport("a"); err == nil {
		t.Error("expected error after delete")
	}
	if _, err := s.GetDoc("a"); err == nil {
		t.Error("expected document to be gone")
	}
}

func TestMemoryStore_SortedListings(t *testing.T) {
	s := NewMemoryStore()
	for _, p := range []string{"c.txt", "a.txt", "b.txt"} {
		s.PutReport(domain.Document{ID: p, Path: p}, domain.Report{Path: p})
	}

	docs, err := s.ListDocs()
	if err != nil {
		t.Fatal(err)
	}
	reports := s.Reports()
	for i, want := range []string{"a.txt", "b.txt", "c.txt"} {
		if docs[i].Path != want {
			t.Errorf("doc %d: expected %s, got %s", i, want, docs[i].Path)
		}
		if reports[i].Path != want {
			t.Errorf("report %d: expected %s, got %s", i, want, reports[i].Path)
		}
	}
}

func TestMemoryStore_StatsAndClear(t *testing.T) {
	s := NewMemoryStore()
	s.PutReport(domain.Document{ID: "a", Path: "a"}, domain.Report{})
	s.UpdateStats(domain.Stats{TotalDocs: 1, TotalWords: 9})

	stats, _ := s.GetStats()
	if stats.TotalWords != 9 {
		t.Errorf("expected 9 words, got %d", stats.TotalWords)
	}

	s.Clear()
	docs, _ := s.ListDocs()
	stats, _ = s.GetStats()
	if len(docs) != 0 || stats.TotalDocs != 0 {
		t.Errorf("expected empty store after Clear, got %d docs and %+v", len(docs), stats)
	}
}
