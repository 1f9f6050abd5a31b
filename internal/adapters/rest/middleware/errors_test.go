package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockLogger struct {
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	m.errors = append(m.errors, msg)
}

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		message        string
		status         int
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name:           "writes not found error",
			code:           ErrorCodeNotFound,
			message:        "route not found",
			status:         http.StatusNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody: map[string]string{
				"error":   "not_found",
				"message": "route not found",
			},
		},
		{
			name:           "writes method not allowed error",
			code:           ErrorCodeMethodNotAllowed,
			message:        "method not allowed",
			status:         http.StatusMethodNotAllowed,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody: map[string]string{
				"error":   "method_not_allowed",
				"message": "method not allowed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteJSONError(w, tt.code, tt.message, tt.status)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", contentType)
			}

			var response map[string]interface{}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			for key, expectedValue := range tt.expectedBody {
				if actualValue, ok := response[key]; !ok {
					t.Errorf("expected key %q not found in response", key)
				} else if actualValue != expectedValue {
					t.Errorf("for key %q: expected %q, got %q", key, expectedValue, actualValue)
				}
			}
		})
	}
}

func TestRecoverer(t *testing.T) {
	log := &mockLogger{}
	handler := Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("renderer blew up")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != ErrorCodeInternalServerError {
		t.Errorf("expected error %q, got %v", ErrorCodeInternalServerError, response["error"])
	}
	if len(log.errors) != 1 {
		t.Errorf("expected 1 logged error, got %d", len(log.errors))
	}
}

func TestRecoverer_PassesThrough(t *testing.T) {
	log := &mockLogger{}
	handler := Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", w.Code)
	}
	if len(log.errors) != 0 {
		t.Errorf("expected no logged errors, got %d", len(log.errors))
	}
}
