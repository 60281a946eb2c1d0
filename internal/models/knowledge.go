// knowledge.go
//
// Knowledge base article and document analysis records for the
// pocket-lawyer data service.

package models

import (
	"time"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/types"
)

// KnowledgeArticle is a legal information article. The only fully mutable
// entity: it supports partial update and delete.
type KnowledgeArticle struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

// KnowledgeArticleInput is the create payload. Tags accept either a JSON
// array or a single string. isPublished defaults to true when omitted.
type KnowledgeArticleInput struct {
	Title       *string                 `json:"title"`
	Content     *string                 `json:"content"`
	Category    *string                 `json:"category"`
	Tags        *types.FlexList[string] `json:"tags"`
	IsPublished *bool                   `json:"isPublished"`
}

func (in *KnowledgeArticleInput) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "title", in.Title)
	errs = requireString(errs, "content", in.Content)
	errs = requireString(errs, "category", in.Category)
	return errs
}

// Article converts a validated input into a storable record.
func (in *KnowledgeArticleInput) Article() KnowledgeArticle {
	a := KnowledgeArticle{
		Title:       *in.Title,
		Content:     *in.Content,
		Category:    *in.Category,
		IsPublished: true,
	}
	if in.Tags != nil {
		a.Tags = in.Tags.Slice()
	}
	if in.IsPublished != nil {
		a.IsPublished = *in.IsPublished
	}
	return a
}

// KnowledgeArticleUpdate is the partial-update payload: every field is
// optional, a present field overwrites (including an explicit empty string).
type KnowledgeArticleUpdate struct {
	Title       *string                 `json:"title"`
	Content     *string                 `json:"content"`
	Category    *string                 `json:"category"`
	Tags        *types.FlexList[string] `json:"tags"`
	IsPublished *bool                   `json:"isPublished"`
}

// DocumentAnalysis is the stored result of one analyze call. Append-only.
type DocumentAnalysis struct {
	ID             int       `json:"id"`
	FileName       string    `json:"fileName"`
	FileType       string    `json:"fileType"`
	AnalysisResult string    `json:"analysisResult"`
	Timestamp      time.Time `json:"timestamp"`
}
