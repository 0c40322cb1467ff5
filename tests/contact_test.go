package tests

import (
	"net/http"
	"os"
	"strings"
	"testing"
)

func TestContactValidationFailed(t *testing.T) {

	// Act
	status, env := doJSON(t, http.MethodPost, "/api/contact", map[string]any{})

	// Assert
	if status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", status)
	}
	if env.Success || env.Error != "Validation failed" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if len(env.Details) < 3 {
		t.Fatalf("expected at least three violations, got %+v", env.Details)
	}
}

func TestContactInvalidJSON(t *testing.T) {

	// Act
	resp, body := do(t, http.MethodPost, "/api/contact", strings.NewReader(`{"name":`), "application/json")
	env := decodeEnvelope(t, body)

	// Assert
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if env.Error != "Invalid JSON in request body" {
		t.Fatalf("unexpected error: %q", env.Error)
	}
}

func TestContactPreflight(t *testing.T) {

	// Act
	resp, _ := do(t, http.MethodOptions, "/api/contact", nil, "")

	// Assert
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
		t.Fatalf("unexpected allow methods: %q", got)
	}
}

func TestContactSend(t *testing.T) {
	if os.Getenv("CONTACT_SEND_REAL_EMAIL") != "true" {
		t.Skip("set CONTACT_SEND_REAL_EMAIL=true to send through the configured provider")
	}

	// Arrange
	payload := map[string]string{
		"name":    "Test User",
		"email":   "test@example.com",
		"message": "hi",
	}

	// Act
	status, env := doJSON(t, http.MethodPost, "/api/contact", payload)

	// Assert
	if status != http.StatusOK {
		t.Fatalf("send failed: status=%d error=%q", status, env.Error)
	}
	if !env.Success || env.MessageID == "" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
