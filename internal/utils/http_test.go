package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"peer": "0xabc"}, http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"peer":"0xabc"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for unmarshalable data")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestReadJSON(t *testing.T) {
	var dst struct {
		Address string `json:"address"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"address":"0xabc"}`))

	if err := ReadJSON(r, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Address != "0xabc" {
		t.Errorf("got %q", dst.Address)
	}
}

func TestReadJSON_UnknownField(t *testing.T) {
	var dst struct {
		Address string `json:"address"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"address":"0xabc","extra":1}`))

	if err := ReadJSON(r, &dst); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
