package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"talentgate/internal/config"
	"talentgate/internal/models"
)

// sheetHeaders is the fixed 13-column row schema, one row per screened
// candidate.
var sheetHeaders = []string{
	"Timestamp", "Candidate Name", "Email", "Phone",
	"Experience (Years)", "Overall Score", "Recommendation",
	"Matching Skills", "Missing Skills", "Education",
	"Job Title", "Analysis Summary", "Interview Questions",
}

// SheetsService is the append-only spreadsheet sink for completed runs.
// A failed connection degrades to a disabled sink: saves return false, no
// call panics or errors out of the sink.
type SheetsService interface {
	IsConnected() bool
	SaveCandidateData(result *models.ScreeningResult, jobRequirements string) bool
	GetSummary() (*models.SummaryResponse, error)
}

type sheetsService struct {
	svc            *sheets.Service
	sheetID        string
	worksheetTitle string

	// Appends are serialized; the spreadsheet is the only shared external
	// resource of concurrent pipeline runs.
	mu sync.Mutex
}

// NewSheetsService connects to the configured spreadsheet and verifies the
// header row. Any failure leaves the sink disabled rather than returning an
// error; screening still works without persistence.
func NewSheetsService(ctx context.Context, cfg config.SheetsConfig) SheetsService {
	s := &sheetsService{
		sheetID:        cfg.SheetID,
		worksheetTitle: cfg.WorksheetTitle,
	}

	if cfg.SheetID == "" {
		log.Println("⚠️ Google Sheets disabled: no sheet id configured")
		return s
	}

	svc, err := connectSheets(ctx, cfg)
	if err != nil {
		log.Printf("⚠️ Google Sheets connection failed: %v\n", err)
		return s
	}
	s.svc = svc

	if err := s.ensureWorksheet(ctx); err != nil {
		log.Printf("⚠️ Could not prepare worksheet: %v\n", err)
		s.svc = nil
		return s
	}

	if err := s.ensureHeaders(ctx); err != nil {
		log.Printf("⚠️ Could not setup headers: %v\n", err)
	}

	return s
}

func connectSheets(ctx context.Context, cfg config.SheetsConfig) (*sheets.Service, error) {
	credentials := map[string]string{
		"type":           "service_account",
		"project_id":     cfg.ProjectID,
		"private_key_id": cfg.PrivateKeyID,
		"private_key":    strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
		"client_email":   cfg.ClientEmail,
		"client_id":      cfg.ClientID,
		"auth_uri":       "https://accounts.google.com/o/oauth2/auth",
		"token_uri":      "https://oauth2.googleapis.com/token",
	}

	payload, err := json.Marshal(credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to build service account payload: %w", err)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(payload),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return svc, nil
}

func (s *sheetsService) ensureWorksheet(ctx context.Context) error {
	spreadsheet, err := s.svc.Spreadsheets.Get(s.sheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to open spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == s.worksheetTitle {
			return nil
		}
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.sheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: s.worksheetTitle},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create worksheet: %w", err)
	}

	return nil
}

// ensureHeaders rewrites the header row when it is absent or does not match
// the expected schema.
func (s *sheetsService) ensureHeaders(ctx context.Context) error {
	headerRange := fmt.Sprintf("%s!1:1", s.worksheetTitle)

	existing, err := s.svc.Spreadsheets.Values.Get(s.sheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read headers: %w", err)
	}

	if len(existing.Values) > 0 && headersMatch(existing.Values[0]) {
		return nil
	}

	clearRange := fmt.Sprintf("%s!A:M", s.worksheetTitle)
	if _, err := s.svc.Spreadsheets.Values.Clear(s.sheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear worksheet: %w", err)
	}

	header := make([]interface{}, len(sheetHeaders))
	for i, h := range sheetHeaders {
		header[i] = h
	}

	_, err = s.svc.Spreadsheets.Values.Append(s.sheetID, headerRange, &sheets.ValueRange{
		Values: [][]interface{}{header},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	return nil
}

func headersMatch(row []interface{}) bool {
	if len(row) != len(sheetHeaders) {
		return false
	}
	for i, cell := range row {
		if fmt.Sprint(cell) != sheetHeaders[i] {
			return false
		}
	}
	return true
}

// IsConnected implements SheetsService.
func (s *sheetsService) IsConnected() bool {
	return s.svc != nil
}

// SaveCandidateData implements SheetsService. One append per completed
// pipeline run; a disabled sink makes every save a no-op returning false.
func (s *sheetsService) SaveCandidateData(result *models.ScreeningResult, jobRequirements string) bool {
	if !s.IsConnected() || result == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := BuildCandidateRow(result, jobRequirements, time.Now())
	appendRange := fmt.Sprintf("%s!A:M", s.worksheetTitle)

	_, err := s.svc.Spreadsheets.Values.Append(s.sheetID, appendRange, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Do()
	if err != nil {
		log.Printf("❌ Failed to save to Google Sheets: %v\n", err)
		return false
	}

	return true
}

// GetSummary implements SheetsService, aggregating all stored rows.
func (s *sheetsService) GetSummary() (*models.SummaryResponse, error) {
	if !s.IsConnected() {
		return nil, fmt.Errorf("google sheets is not connected")
	}

	dataRange := fmt.Sprintf("%s!A2:M", s.worksheetTitle)
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, dataRange).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}

	total := len(resp.Values)
	if total == 0 {
		return &models.SummaryResponse{}, nil
	}

	approved := 0
	for _, row := range resp.Values {
		if len(row) > 6 && fmt.Sprint(row[6]) == models.RecommendationProceed {
			approved++
		}
	}

	rate := float64(approved) / float64(total) * 100

	return &models.SummaryResponse{
		TotalCandidates: total,
		Approved:        approved,
		Rejected:        total - approved,
		ApprovalRate:    math.Round(rate*10) / 10,
	}, nil
}

// BuildCandidateRow flattens a result envelope into the 13-column schema.
func BuildCandidateRow(result *models.ScreeningResult, jobRequirements string, now time.Time) []interface{} {
	name, email, phone, experience := "N/A", "N/A", "N/A", "N/A"
	education := "N/A"
	if resume := result.ParsedResume; resume != nil {
		if resume.Name != "" {
			name = resume.Name
		}
		if resume.Email != "" {
			email = resume.Email
		}
		if resume.Phone != "" {
			phone = resume.Phone
		}
		experience = strconv.FormatFloat(resume.ExperienceYears, 'f', -1, 64)
		education = resume.Education.Flatten()
	}

	score := "0"
	if result.Score != nil {
		score = strconv.Itoa(*result.Score)
	}

	recommendation := result.Recommendation
	if recommendation == "" {
		recommendation = "UNKNOWN"
	}

	matching, missing, summary := "", "", "N/A"
	if analysis := result.Analysis; analysis != nil {
		matching = strings.Join(analysis.SkillMatches, ", ")
		missing = strings.Join(analysis.MissingSkills, ", ")
		if analysis.AnalysisSummary != "" {
			summary = analysis.AnalysisSummary
		}
	}

	questions := ""
	if result.HRReport != nil {
		questions = strings.Join(result.HRReport.InterviewQuestions, " | ")
	}

	return []interface{}{
		now.Format("2006-01-02 15:04:05"),
		name,
		email,
		phone,
		experience,
		score,
		recommendation,
		matching,
		missing,
		education,
		ExtractJobTitle(jobRequirements),
		summary,
		questions,
	}
}

// ExtractJobTitle scans the free-text job requirements for a line carrying
// the literal "Job Title" label and takes the text after its last colon.
func ExtractJobTitle(jobRequirements string) string {
	if !strings.Contains(jobRequirements, "Job Title") {
		return "N/A"
	}

	for _, line := range strings.Split(jobRequirements, "\n") {
		if !strings.Contains(line, "Job Title") {
			continue
		}
		parts := strings.Split(line, ":")
		title := strings.TrimSpace(parts[len(parts)-1])
		return strings.ReplaceAll(title, "*", "")
	}

	return "N/A"
}
