package data

import (
	_ "embed"
)

//go:embed seed/knowledge_articles.json
var KnowledgeArticles []byte

//go:embed seed/legal_templates.json
var LegalTemplates []byte

//go:embed seed/case_law.json
var CaseLaw []byte

//go:embed seed/state_law_guides.json
var StateLawGuides []byte
