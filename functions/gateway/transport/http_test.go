package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendServerRes(t *testing.T) {
	tests := []struct {
		name   string
		body   []byte
		status int
		err    error
	}{
		{"Success", []byte(`{"name":"margherita","price":10}`), http.StatusOK, nil},
		{"Client error", ErrorJSON("no pizza found"), http.StatusBadRequest, nil},
		{"Server error", ErrorJSON("internal storage error"), http.StatusInternalServerError, errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SendServerRes(w, tt.body, tt.status, tt.err)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if w.Body.String() != string(tt.body) {
				t.Errorf("expected body %s, got %s", tt.body, w.Body.String())
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("expected json content type, got %s", w.Header().Get("Content-Type"))
			}
		})
	}
}
