package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/handlers"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/notify"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

// recordingNotifier captures notified feedback for assertions
type recordingNotifier struct {
	mu       sync.Mutex
	received []models.Feedback
}

func (n *recordingNotifier) NotifyFeedback(f models.Feedback) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received = append(n.received, f)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.received)
}

func newFeedbackApp(s store.Store, n notify.Notifier) *fiber.App {
	app := fiber.New()
	handler := &handlers.FeedbackHandler{Store: s, Notifier: n}
	app.Post("/api/feedback", handler.CreateFeedback)
	app.Get("/api/feedback", handler.ListFeedback)
	return app
}

// TestCreateFeedback tests the POST /api/feedback endpoint
func TestCreateFeedback(t *testing.T) {
	s := store.NewMemStore()
	notifier := &recordingNotifier{}
	app := newFeedbackApp(s, notifier)

	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(
		`{"type": "text", "content": "Very helpful", "userAgent": "test-agent"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["id"] != float64(1) || result["type"] != "text" {
		t.Errorf("Expected stored feedback in response, got %v", result)
	}
	if result["timestamp"] == nil {
		t.Error("Expected server-assigned timestamp")
	}

	// Notification is async but should land shortly
	deadline := time.Now().Add(2 * time.Second)
	for notifier.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if notifier.count() != 1 {
		t.Errorf("Expected 1 notification, got %d", notifier.count())
	}
}

// TestCreateFeedbackValidation tests the type enum check
func TestCreateFeedbackValidation(t *testing.T) {
	app := newFeedbackApp(store.NewMemStore(), nil)

	for _, body := range []string{
		`{}`,
		`{"type": "angry"}`,
	} {
		req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		if resp.StatusCode != 400 {
			t.Errorf("Body %s: expected status 400, got %d", body, resp.StatusCode)
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result["message"] != "Invalid feedback data" {
			t.Errorf("Body %s: expected 'Invalid feedback data', got %v", body, result["message"])
		}
	}
}

// TestCreateFeedbackNilNotifier tests that a missing notifier is tolerated
func TestCreateFeedbackNilNotifier(t *testing.T) {
	s := store.NewMemStore()
	app := newFeedbackApp(s, nil)

	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(`{"type": "positive"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := len(s.Feedback()); got != 1 {
		t.Errorf("Expected feedback persisted, got %d", got)
	}
}

// TestCreateFeedbackDeliveryFailure tests that an undeliverable
// notification never changes the client response
func TestCreateFeedbackDeliveryFailure(t *testing.T) {
	s := store.NewMemStore()
	// A webhook nothing listens on; delivery fails after the response is sent
	notifier := notify.NewService(&config.Config{FeedbackWebhookURL: "http://127.0.0.1:1/hook"})
	app := newFeedbackApp(s, notifier)

	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(
		`{"type": "negative", "content": "broken link"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200 despite delivery failure, got %d", resp.StatusCode)
	}
	if got := len(s.Feedback()); got != 1 {
		t.Errorf("Expected feedback persisted, got %d", got)
	}
}

// TestListFeedback tests the GET /api/feedback endpoint
func TestListFeedback(t *testing.T) {
	s := store.NewMemStore()
	app := newFeedbackApp(s, nil)

	for _, body := range []string{
		`{"type": "positive"}`,
		`{"type": "negative", "content": "Too slow"}`,
	} {
		req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if _, err := app.Test(req); err != nil {
			t.Fatalf("Failed to seed feedback: %v", err)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/feedback", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var list []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 feedback entries, got %d", len(list))
	}
	if list[0]["type"] != "positive" || list[1]["type"] != "negative" {
		t.Errorf("Expected insertion order, got %v", list)
	}
	// Optional fields stay absent when never set
	if _, present := list[0]["content"]; present {
		t.Errorf("Expected content omitted for entry without it, got %v", list[0])
	}
}
