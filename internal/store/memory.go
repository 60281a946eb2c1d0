// memory.go
//
// In-memory implementation of the Store contract. One map and one
// monotonic id counter per record type, all guarded by a single RWMutex so
// concurrent handlers see consistent snapshots.

package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
)

// MemStore is the in-memory Store. Construct with NewMemStore; the zero
// value is not usable.
type MemStore struct {
	mu sync.RWMutex

	users             map[int]models.User
	chatMessages      map[int]models.ChatMessage
	knowledgeArticles map[int]models.KnowledgeArticle
	documentAnalyses  map[int]models.DocumentAnalysis
	legalTemplates    map[int]models.LegalTemplate
	caseLaws          map[int]models.CaseLaw
	stateLawGuides    map[int]models.StateLawGuide
	feedbackList      map[int]models.Feedback

	nextUserID      int
	nextMessageID   int
	nextKnowledgeID int
	nextDocumentID  int
	nextTemplateID  int
	nextCaseLawID   int
	nextGuideID     int
	nextFeedbackID  int
}

// NewMemStore returns an empty store with all id counters at 1.
func NewMemStore() *MemStore {
	return &MemStore{
		users:             make(map[int]models.User),
		chatMessages:      make(map[int]models.ChatMessage),
		knowledgeArticles: make(map[int]models.KnowledgeArticle),
		documentAnalyses:  make(map[int]models.DocumentAnalysis),
		legalTemplates:    make(map[int]models.LegalTemplate),
		caseLaws:          make(map[int]models.CaseLaw),
		stateLawGuides:    make(map[int]models.StateLawGuide),
		feedbackList:      make(map[int]models.Feedback),
		nextUserID:        1,
		nextMessageID:     1,
		nextKnowledgeID:   1,
		nextDocumentID:    1,
		nextTemplateID:    1,
		nextCaseLawID:     1,
		nextGuideID:       1,
		nextFeedbackID:    1,
	}
}

// sortedByID returns every row ordered by ascending id. Ids are assigned
// monotonically, so this is insertion order.
func sortedByID[T any](rows map[int]T, id func(T) int) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

// Users

func (s *MemStore) User(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *MemStore) UserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range sortedByID(s.users, func(u models.User) int { return u.ID }) {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *MemStore) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = u
	return u
}

// Chat messages

func (s *MemStore) ChatMessages(userID int) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := sortedByID(s.chatMessages, func(m models.ChatMessage) int { return m.ID })
	if userID == 0 {
		return all
	}
	out := make([]models.ChatMessage, 0)
	for _, m := range all {
		if m.UserID != nil && *m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

func (s *MemStore) CreateChatMessage(m models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextMessageID
	s.nextMessageID++
	m.Timestamp = time.Now().UTC()
	s.chatMessages[m.ID] = m
	return m
}

// Knowledge articles

func (s *MemStore) KnowledgeArticles() []models.KnowledgeArticle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.knowledgeArticles, func(a models.KnowledgeArticle) int { return a.ID })
}

func (s *MemStore) KnowledgeArticle(id int) (models.KnowledgeArticle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.knowledgeArticles[id]
	return a, ok
}

func (s *MemStore) CreateKnowledgeArticle(a models.KnowledgeArticle) models.KnowledgeArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextKnowledgeID
	s.nextKnowledgeID++
	s.knowledgeArticles[a.ID] = a
	return a
}

// UpdateKnowledgeArticle shallow-merges the present fields of upd into the
// stored article. A field set to an explicit empty value still overwrites.
func (s *MemStore) UpdateKnowledgeArticle(id int, upd models.KnowledgeArticleUpdate) (models.KnowledgeArticle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.knowledgeArticles[id]
	if !ok {
		return models.KnowledgeArticle{}, false
	}
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Content != nil {
		a.Content = *upd.Content
	}
	if upd.Category != nil {
		a.Category = *upd.Category
	}
	if upd.Tags != nil {
		a.Tags = upd.Tags.Slice()
	}
	if upd.IsPublished != nil {
		a.IsPublished = *upd.IsPublished
	}
	s.knowledgeArticles[id] = a
	return a, true
}

func (s *MemStore) DeleteKnowledgeArticle(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.knowledgeArticles[id]; !ok {
		return false
	}
	delete(s.knowledgeArticles, id)
	return true
}

// Document analyses

func (s *MemStore) DocumentAnalyses() []models.DocumentAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.documentAnalyses, func(d models.DocumentAnalysis) int { return d.ID })
}

func (s *MemStore) CreateDocumentAnalysis(d models.DocumentAnalysis) models.DocumentAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.nextDocumentID
	s.nextDocumentID++
	d.Timestamp = time.Now().UTC()
	s.documentAnalyses[d.ID] = d
	return d
}

// Legal templates

func (s *MemStore) LegalTemplates() []models.LegalTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.legalTemplates, func(t models.LegalTemplate) int { return t.ID })
}

// LegalTemplatesByCategory re-scans on every call; the match is exact and
// case-sensitive.
func (s *MemStore) LegalTemplatesByCategory(category string) []models.LegalTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LegalTemplate, 0)
	for _, t := range sortedByID(s.legalTemplates, func(t models.LegalTemplate) int { return t.ID }) {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func (s *MemStore) LegalTemplate(id int) (models.LegalTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.legalTemplates[id]
	return t, ok
}

func (s *MemStore) CreateLegalTemplate(t models.LegalTemplate) models.LegalTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTemplateID
	s.nextTemplateID++
	s.legalTemplates[t.ID] = t
	return t
}

// Case law

func (s *MemStore) CaseLaw() []models.CaseLaw {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.caseLaws, func(c models.CaseLaw) int { return c.ID })
}

func (s *MemStore) CaseLawByCategory(category string) []models.CaseLaw {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CaseLaw, 0)
	for _, c := range sortedByID(s.caseLaws, func(c models.CaseLaw) int { return c.ID }) {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// SearchCaseLaw matches the lowercased query as a substring of caseTitle,
// summary, or any keyPoints entry. No ranking; storage order.
func (s *MemStore) SearchCaseLaw(query string) []models.CaseLaw {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term := strings.ToLower(query)
	out := make([]models.CaseLaw, 0)
	for _, c := range sortedByID(s.caseLaws, func(c models.CaseLaw) int { return c.ID }) {
		if caseMatches(c, term) {
			out = append(out, c)
		}
	}
	return out
}

func caseMatches(c models.CaseLaw, term string) bool {
	if strings.Contains(strings.ToLower(c.CaseTitle), term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Summary), term) {
		return true
	}
	for _, p := range c.KeyPoints {
		if strings.Contains(strings.ToLower(p), term) {
			return true
		}
	}
	return false
}

func (s *MemStore) CreateCaseLaw(c models.CaseLaw) models.CaseLaw {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCaseLawID
	s.nextCaseLawID++
	s.caseLaws[c.ID] = c
	return c
}

// State law guides

func (s *MemStore) StateLawGuides() []models.StateLawGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.stateLawGuides, func(g models.StateLawGuide) int { return g.ID })
}

func (s *MemStore) StateLawGuidesByState(state string) []models.StateLawGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StateLawGuide, 0)
	for _, g := range sortedByID(s.stateLawGuides, func(g models.StateLawGuide) int { return g.ID }) {
		if g.State == state {
			out = append(out, g)
		}
	}
	return out
}

func (s *MemStore) StateLawGuidesByCategory(category string) []models.StateLawGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StateLawGuide, 0)
	for _, g := range sortedByID(s.stateLawGuides, func(g models.StateLawGuide) int { return g.ID }) {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

func (s *MemStore) CreateStateLawGuide(g models.StateLawGuide) models.StateLawGuide {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.nextGuideID
	s.nextGuideID++
	g.LastUpdated = time.Now().UTC()
	s.stateLawGuides[g.ID] = g
	return g
}

// Feedback

func (s *MemStore) CreateFeedback(f models.Feedback) models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.nextFeedbackID
	s.nextFeedbackID++
	f.Timestamp = time.Now().UTC()
	s.feedbackList[f.ID] = f
	return f
}

func (s *MemStore) Feedback() []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.feedbackList, func(f models.Feedback) int { return f.ID })
}

// Counts reports the number of stored records per entity type.
func (s *MemStore) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"users":             len(s.users),
		"chatMessages":      len(s.chatMessages),
		"knowledgeArticles": len(s.knowledgeArticles),
		"documentAnalyses":  len(s.documentAnalyses),
		"legalTemplates":    len(s.legalTemplates),
		"caseLaw":           len(s.caseLaws),
		"stateLawGuides":    len(s.stateLawGuides),
		"feedback":          len(s.feedbackList),
	}
}
