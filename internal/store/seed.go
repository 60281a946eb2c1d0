// seed.go
//
// Loads the embedded content catalogs (knowledge articles, legal templates,
// case law, state law guides) into a freshly created store at startup.

package store

import (
	"encoding/json"
	"fmt"

	"github.com/pocketlawyer/pocket-lawyer-api/data"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
)

// Seed inserts the embedded catalogs into s. Insert order follows file
// order, so seeded ids are stable across runs.
func Seed(s Store) error {
	if err := SeedKnowledge(s); err != nil {
		return err
	}

	var templates []models.LegalTemplate
	if err := json.Unmarshal(data.LegalTemplates, &templates); err != nil {
		return fmt.Errorf("seed legal templates: %w", err)
	}
	for _, t := range templates {
		s.CreateLegalTemplate(t)
	}

	var cases []models.CaseLaw
	if err := json.Unmarshal(data.CaseLaw, &cases); err != nil {
		return fmt.Errorf("seed case law: %w", err)
	}
	for _, c := range cases {
		s.CreateCaseLaw(c)
	}

	var guides []models.StateLawGuide
	if err := json.Unmarshal(data.StateLawGuides, &guides); err != nil {
		return fmt.Errorf("seed state law guides: %w", err)
	}
	for _, g := range guides {
		s.CreateStateLawGuide(g)
	}

	return nil
}

// SeedKnowledge inserts only the knowledge article catalog. The function
// gateway uses this; it serves no other entity.
func SeedKnowledge(s Store) error {
	var articles []models.KnowledgeArticle
	if err := json.Unmarshal(data.KnowledgeArticles, &articles); err != nil {
		return fmt.Errorf("seed knowledge articles: %w", err)
	}
	for _, a := range articles {
		s.CreateKnowledgeArticle(a)
	}
	return nil
}
