package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"talentgate/internal/models"
	"talentgate/internal/repositories"
)

// ScreenerService drives one queued screening end to end: load the record,
// run the pipeline, persist the envelope, append to the spreadsheet sink.
type ScreenerService interface {
	ProcessScreening(ctx context.Context, screeningID uuid.UUID) error
}

type screenerService struct {
	screeningRepo repositories.ScreeningRepository
	pipeline      *ScreeningPipeline
	sheets        SheetsService
}

func NewScreenerService(
	screeningRepo repositories.ScreeningRepository,
	pipeline *ScreeningPipeline,
	sheets SheetsService,
) ScreenerService {
	return &screenerService{
		screeningRepo: screeningRepo,
		pipeline:      pipeline,
		sheets:        sheets,
	}
}

func (s *screenerService) ProcessScreening(ctx context.Context, screeningID uuid.UUID) error {
	if err := s.screeningRepo.UpdateStatus(screeningID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting screening %s\n", screeningID)

	screening, err := s.screeningRepo.FindByID(screeningID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return fmt.Errorf("failed to get screening: %w", err)
	}

	if s.pipeline == nil {
		msg := "model client is not configured"
		s.screeningRepo.UpdateError(screeningID, msg)
		return fmt.Errorf("%s", msg)
	}

	result := s.pipeline.ProcessCandidate(ctx, screening.ResumeText, screening.JobRequirements)

	if result.Failed() {
		detail := result.Error
		if result.Details != nil && result.Details.Error != "" {
			detail = result.Details.Error
		}
		if err := s.screeningRepo.UpdateError(screeningID, detail); err != nil {
			return fmt.Errorf("failed to save failure: %w", err)
		}
		log.Printf("❌ Screening %s terminated: %s\n", screeningID, result.Error)
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to serialize result: %v", err))
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	if err := s.screeningRepo.UpdateResult(screeningID, result, string(payload)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	if s.sheets != nil && s.sheets.IsConnected() {
		if ok := s.sheets.SaveCandidateData(result, screening.JobRequirements); !ok {
			log.Printf("⚠️ Could not append screening %s to Google Sheets\n", screeningID)
		}
	}

	log.Printf("✅ Screening %s completed: %s\n", screeningID, result.Recommendation)
	return nil
}
