package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := JSON(rec, http.StatusCreated, map[string]string{"key": "value"}); err != nil {
		t.Fatalf("failed to write response: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got: %d", http.StatusCreated, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got: %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid json: %v", err)
	}
	if body["key"] != "value" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestErr(t *testing.T) {
	cases := []struct {
		name        string
		err         Error
		details     string
		wantCode    int
		wantFailure bool
	}{
		{
			name:     "invalid input",
			err:      ErrInvalidInput,
			details:  "bad rule",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found",
			err:      ErrNotFound,
			details:  "no such rule",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "internal error",
			err:      ErrInternalError,
			details:  "store failed",
			wantCode: http.StatusInternalServerError,
		},
		{
			name:        "unknown error key",
			err:         Error("NO_SUCH_ERROR"),
			wantFailure: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			err := Err(rec, tc.err, tc.details)

			if tc.wantFailure {
				if err == nil {
					t.Fatal("expected an error for an unregistered error key")
				}
				return
			}

			if err != nil {
				t.Fatalf("failed to write error response: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got: %d", tc.wantCode, rec.Code)
			}

			var body RestError
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid json: %v", err)
			}
			if body.Title != string(tc.err) {
				t.Fatalf("expected title %q, got: %q", tc.err, body.Title)
			}
			if body.Details != tc.details {
				t.Fatalf("expected details %q, got: %q", tc.details, body.Details)
			}
		})
	}
}
