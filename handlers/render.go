// Package handlers exposes the stateless render API: budget documents
// come in as JSON and leave as PDF, Excel or computed totals.
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"budgetdoc/services"
)

// decodeDocument reads the JSON document payload of a render request.
func decodeDocument(r *http.Request) (services.Document, error) {
	var doc services.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return services.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// requestID returns a short id for log correlation.
func requestID() string {
	return uuid.NewString()[:8]
}

// HandleRenderPDF renders a posted budget document as a downloadable PDF.
func HandleRenderPDF(w http.ResponseWriter, r *http.Request) {
	reqID := requestID()

	doc, err := decodeDocument(r)
	if err != nil {
		log.Printf("render %s: bad document: %v", reqID, err)
		http.Error(w, "Invalid document payload", http.StatusBadRequest)
		return
	}

	pdfBytes, err := services.GeneratePDF(services.RenderDocument(doc))
	if err != nil {
		log.Printf("render %s: failed to generate PDF: %v", reqID, err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s.pdf", sanitizeFilename(documentName(doc)))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(pdfBytes)
}

// HandleRenderExcel renders a posted budget document as a downloadable
// Excel workbook.
func HandleRenderExcel(w http.ResponseWriter, r *http.Request) {
	reqID := requestID()

	doc, err := decodeDocument(r)
	if err != nil {
		log.Printf("render %s: bad document: %v", reqID, err)
		http.Error(w, "Invalid document payload", http.StatusBadRequest)
		return
	}

	excelBytes, err := services.GenerateExcel(services.RenderDocument(doc))
	if err != nil {
		log.Printf("render %s: failed to generate Excel: %v", reqID, err)
		http.Error(w, "Failed to generate Excel", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(documentName(doc)))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(excelBytes)
}

// HandleRenderTotals returns the computed per-bucket subtotals and the
// grand total of a posted budget document as JSON.
func HandleRenderTotals(w http.ResponseWriter, r *http.Request) {
	reqID := requestID()

	doc, err := decodeDocument(r)
	if err != nil {
		log.Printf("render %s: bad document: %v", reqID, err)
		http.Error(w, "Invalid document payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(services.CalcDocumentTotals(doc)); err != nil {
		log.Printf("render %s: failed to encode totals: %v", reqID, err)
	}
}

// HandleHealthz reports liveness.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

// documentName returns a non-empty base name for download files.
func documentName(doc services.Document) string {
	if doc.Title != "" {
		return doc.Title
	}
	return "budget"
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
