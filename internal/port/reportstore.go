package port

import "readability/internal/domain"

type ReportStore interface {
	PutReport(doc domain.Document, report domain.Report) error

	GetReport(docID string) (domain.Report, error)

	ListDocs() ([]domain.Document, error)

	DeleteDoc(id string) error

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Close() error
}
