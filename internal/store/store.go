// store.go
//
// Storage contract for the pocket-lawyer data service. The store is the
// authoritative, process-lifetime owner of every record; handlers only ever
// hold copies passed in or returned from it.

package store

import (
	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
)

// Store provides typed CRUD and filtered-query operations per record type.
// Lookup misses are reported as sentinel results, never as errors. Create
// operations assign identity (a per-type counter starting at 1, never reset,
// never reused after delete) and any server-set timestamps.
type Store interface {
	// Users
	User(id int) (models.User, bool)
	UserByUsername(username string) (models.User, bool)
	CreateUser(u models.User) models.User

	// Chat messages. userID 0 means no user filter (every message).
	ChatMessages(userID int) []models.ChatMessage
	CreateChatMessage(m models.ChatMessage) models.ChatMessage

	// Knowledge articles
	KnowledgeArticles() []models.KnowledgeArticle
	KnowledgeArticle(id int) (models.KnowledgeArticle, bool)
	CreateKnowledgeArticle(a models.KnowledgeArticle) models.KnowledgeArticle
	UpdateKnowledgeArticle(id int, upd models.KnowledgeArticleUpdate) (models.KnowledgeArticle, bool)
	DeleteKnowledgeArticle(id int) bool

	// Document analyses
	DocumentAnalyses() []models.DocumentAnalysis
	CreateDocumentAnalysis(d models.DocumentAnalysis) models.DocumentAnalysis

	// Legal templates
	LegalTemplates() []models.LegalTemplate
	LegalTemplatesByCategory(category string) []models.LegalTemplate
	LegalTemplate(id int) (models.LegalTemplate, bool)
	CreateLegalTemplate(t models.LegalTemplate) models.LegalTemplate

	// Case law
	CaseLaw() []models.CaseLaw
	CaseLawByCategory(category string) []models.CaseLaw
	SearchCaseLaw(query string) []models.CaseLaw
	CreateCaseLaw(c models.CaseLaw) models.CaseLaw

	// State law guides
	StateLawGuides() []models.StateLawGuide
	StateLawGuidesByState(state string) []models.StateLawGuide
	StateLawGuidesByCategory(category string) []models.StateLawGuide
	CreateStateLawGuide(g models.StateLawGuide) models.StateLawGuide

	// Feedback
	CreateFeedback(f models.Feedback) models.Feedback
	Feedback() []models.Feedback

	// Counts reports the number of stored records per entity type.
	Counts() map[string]int
}
