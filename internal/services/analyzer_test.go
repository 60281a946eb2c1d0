package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/services"
)

// TestAnalyze tests the analysis text shape
func TestAnalyze(t *testing.T) {
	a := services.NewAnalyzer(0)

	got, err := a.Analyze(context.Background(), "lease.pdf", "PDF")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !strings.HasPrefix(got, "Document Analysis for lease.pdf:") {
		t.Errorf("Expected analysis header with file name, got %q", got)
	}
	if !strings.Contains(got, "Document Type: PDF") {
		t.Error("Expected document type line")
	}
	if !strings.Contains(got, "appears to be a pdf file") {
		t.Error("Expected lowercased file type in summary")
	}
	if !strings.Contains(got, "Key Findings:") || !strings.Contains(got, "Recommendations:") {
		t.Error("Expected findings and recommendations sections")
	}
}

// TestAnalyzeCancellation tests that a cancelled context aborts the delay
func TestAnalyzeCancellation(t *testing.T) {
	a := services.NewAnalyzer(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if _, err := a.Analyze(ctx, "x", "PDF"); err == nil {
		t.Fatal("Expected an error from the cancelled context")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected immediate return, took %v", elapsed)
	}
}
