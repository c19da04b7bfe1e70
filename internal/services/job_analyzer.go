package services

import (
	"context"
	"fmt"

	"talentgate/internal/models"
)

// JobAnalysisResult is the tagged outcome of the job fit analysis stage.
// On failure Data still carries a zero-score rejection so the threshold
// gate has a well-defined numeric input and fails closed.
type JobAnalysisResult struct {
	Success bool                `json:"success"`
	Data    *models.FitAnalysis `json:"data"`
	Error   string              `json:"error,omitempty"`
}

// AnalyzeJobFit runs the second stage: scoring the parsed profile against
// the job requirements with the fixed weighting stated in the prompt.
func (p *ScreeningPipeline) AnalyzeJobFit(ctx context.Context, profile *models.CandidateProfile, jobRequirements string) JobAnalysisResult {
	prompt := p.prompts.BuildJobAnalysisPrompt(profile, jobRequirements)

	response, err := p.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return jobAnalysisFailure(err)
	}

	var analysis models.FitAnalysis
	if err := ExtractJSON(response, &analysis); err != nil {
		return jobAnalysisFailure(err)
	}

	return JobAnalysisResult{Success: true, Data: &analysis}
}

func jobAnalysisFailure(err error) JobAnalysisResult {
	return JobAnalysisResult{
		Success: false,
		Data: &models.FitAnalysis{
			OverallScore:   0,
			Recommendation: models.RecommendationReject,
		},
		Error: fmt.Sprintf("Job analysis failed: %v", err),
	}
}
