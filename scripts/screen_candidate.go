package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"talentgate/internal/config"
	"talentgate/internal/services"
)

// Runs one screening pass without the API server: reads a resume file and a
// job-description file, prints the result envelope as JSON, and optionally
// appends the run to the configured Google Sheet.
func main() {
	resumePath := flag.String("resume", "", "path to the resume file (pdf, docx, or txt)")
	jobPath := flag.String("job", "", "path to the job requirements text file")
	saveToSheet := flag.Bool("save", false, "append the result to the configured Google Sheet")
	flag.Parse()

	if *resumePath == "" || *jobPath == "" {
		fmt.Fprintln(os.Stderr, "usage: screen_candidate -resume <file> -job <file> [-save]")
		os.Exit(2)
	}

	cfg := config.Load()

	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is not configured")
	}

	resumeData, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	jobData, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job requirements: %v", err)
	}

	textExtractor := services.NewTextExtractorService()
	resumeText := textExtractor.ExtractText(resumeData, *resumePath)
	if services.IsExtractionError(resumeText) {
		log.Fatalf("❌ %s", resumeText)
	}

	jobRequirements := strings.TrimSpace(string(jobData))
	if resumeText == "" {
		log.Fatal("❌ Resume text is empty")
	}
	if jobRequirements == "" {
		log.Fatal("❌ Job requirements are empty")
	}

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Temperature,
		cfg.Gemini.RequestTimeout,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	ctx := context.Background()
	pipeline := services.NewScreeningPipeline(geminiService)
	result := pipeline.ProcessCandidate(ctx, resumeText, jobRequirements)

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to serialize result: %v", err)
	}
	fmt.Println(string(payload))

	if *saveToSheet && !result.Failed() {
		sheetsService := services.NewSheetsService(ctx, cfg.Sheets)
		if sheetsService.SaveCandidateData(result, jobRequirements) {
			log.Println("✅ Saved to Google Sheets")
		} else {
			log.Println("⚠️ Could not save to Google Sheets")
		}
	}
}
