// library.go
//
// Read-only catalog records: legal templates, case law, and state law
// guides. All three are seeded at startup and exposed read-only over the
// API.

package models

import "time"

// LegalTemplate is a fill-in-the-blanks legal document template.
type LegalTemplate struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

// CaseLaw is a court decision entry, searchable by substring across
// caseTitle, summary, and keyPoints.
type CaseLaw struct {
	ID        int      `json:"id"`
	CaseTitle string   `json:"caseTitle"`
	Court     string   `json:"court"`
	Year      int      `json:"year"`
	Citation  string   `json:"citation"`
	Summary   string   `json:"summary"`
	Category  string   `json:"category"`
	KeyPoints []string `json:"keyPoints"`
}

// StateLawGuide is a per-state legal guide, filterable by state or category.
type StateLawGuide struct {
	ID          int       `json:"id"`
	State       string    `json:"state"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}
