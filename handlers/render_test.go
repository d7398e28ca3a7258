package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetdoc/services"
	"budgetdoc/testhelpers"
)

func postDocument(t *testing.T, handler http.HandlerFunc, doc services.Document) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleRenderPDF(t *testing.T) {
	rr := postDocument(t, HandleRenderPDF, testhelpers.SampleDocument())

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "Annual-Program-Budget-2025.pdf") {
		t.Errorf("Content-Disposition = %q, want sanitized filename", cd)
	}
	if body := rr.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response body is not a PDF")
	}
}

func TestHandleRenderPDF_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	HandleRenderPDF(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestHandleRenderExcel(t *testing.T) {
	rr := postDocument(t, HandleRenderExcel, testhelpers.SampleDocument())

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q, want spreadsheet", ct)
	}
	// XLSX files are zip archives.
	if body := rr.Body.Bytes(); len(body) < 2 || string(body[:2]) != "PK" {
		t.Error("response body is not an XLSX archive")
	}
}

func TestHandleRenderTotals(t *testing.T) {
	rr := postDocument(t, HandleRenderTotals, testhelpers.SampleDocument())

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var totals services.DocumentTotals
	if err := json.Unmarshal(rr.Body.Bytes(), &totals); err != nil {
		t.Fatalf("failed to decode totals: %v", err)
	}

	// Program bucket auto-detects unitPrice as its total column; the
	// admin bucket auto-detects approvedAmount.
	if len(totals.Buckets) != 2 {
		t.Fatalf("got %d bucket totals, want 2", len(totals.Buckets))
	}
	if totals.Buckets[0].Subtotal != 26500 {
		t.Errorf("program subtotal = %v, want 26500", totals.Buckets[0].Subtotal)
	}
	if totals.Buckets[1].Subtotal != 350000 {
		t.Errorf("admin subtotal = %v, want 350000", totals.Buckets[1].Subtotal)
	}
	if totals.GrandTotal != 376500 {
		t.Errorf("grand total = %v, want 376500", totals.GrandTotal)
	}
	if totals.GrandSecondary != 251 {
		t.Errorf("grand secondary = %v, want 251", totals.GrandSecondary)
	}
}

func TestHandleRenderTotals_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(""))
	rr := httptest.NewRecorder()
	HandleRenderTotals(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rr := httptest.NewRecorder()
	HandleHealthz(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rr.Body.String())
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces", "Annual Budget", "Annual-Budget"},
		{"slashes", "q1/q2", "q1-q2"},
		{"colons", "plan:final", "plan-final"},
		{"clean", "budget", "budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
