// documents.go
//
// Document analysis routes.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/services"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/utils"
)

// DocumentHandler handles document analysis routes
type DocumentHandler struct {
	Store    store.Store
	Analyzer *services.Analyzer
}

// AnalyzeRequest is the body of POST /api/documents/analyze. The content is
// accepted but does not influence the result.
type AnalyzeRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Content  string `json:"content"`
}

// ListAnalyses handles GET /api/documents
// @Summary List document analyses
// @Tags Documents
// @Produce json
// @Success 200 {array} models.DocumentAnalysis
// @Router /documents [get]
func (h *DocumentHandler) ListAnalyses(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.DocumentAnalyses())
}

// Analyze handles POST /api/documents/analyze
// @Summary Analyze a document
// @Description Produce and persist an analysis for the named document
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body handlers.AnalyzeRequest true "Document to analyze"
// @Success 200 {object} models.DocumentAnalysis
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /documents/analyze [post]
func (h *DocumentHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil || req.FileName == "" || req.FileType == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File name and type are required")
	}

	result, err := h.Analyzer.Analyze(c.Context(), req.FileName, req.FileType)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to analyze document")
	}

	analysis := h.Store.CreateDocumentAnalysis(models.DocumentAnalysis{
		FileName:       req.FileName,
		FileType:       req.FileType,
		AnalysisResult: result,
	})
	return c.Status(fiber.StatusOK).JSON(analysis)
}
