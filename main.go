package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"budgetdoc/handlers"
)

func main() {
	// Load .env for local dev; in production everything comes from the
	// real environment.
	_ = godotenv.Load()

	router := mux.NewRouter()

	// ── Render API ───────────────────────────────────────────────
	router.HandleFunc("/api/documents/render/pdf", handlers.HandleRenderPDF).Methods("POST")
	router.HandleFunc("/api/documents/render/excel", handlers.HandleRenderExcel).Methods("POST")
	router.HandleFunc("/api/documents/render/totals", handlers.HandleRenderTotals).Methods("POST")

	router.HandleFunc("/api/healthz", handlers.HandleHealthz).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	log.Printf("budget document renderer listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
