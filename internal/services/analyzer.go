// analyzer.go
//
// Templated document analysis for uploaded legal documents.

package services

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const analysisTemplate = `Document Analysis for %s:

Document Type: %s
Analysis Summary: This document appears to be a %s file. Based on the content structure, this could be a legal document requiring careful review.

Key Findings:
- Document contains standard legal language
- Proper formatting detected
- No obvious red flags identified

Recommendations:
- Review all terms carefully before signing
- Consider consulting with a legal professional
- Ensure all parties understand their obligations`

// Analyzer produces document analysis text with a simulated processing delay.
type Analyzer struct {
	delay time.Duration
}

func NewAnalyzer(delay time.Duration) *Analyzer {
	return &Analyzer{delay: delay}
}

// Analyze returns the analysis text for the named document. The uploaded
// content does not influence the result. Analyze returns early with
// ctx.Err() if the context is cancelled mid-delay.
func (a *Analyzer) Analyze(ctx context.Context, fileName, fileType string) (string, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Sprintf(analysisTemplate, fileName, fileType, strings.ToLower(fileType)), nil
}
