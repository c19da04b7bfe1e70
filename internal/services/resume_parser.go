package services

import (
	"context"
	"fmt"

	"talentgate/internal/models"
)

// ResumeParseResult is the tagged outcome of the resume parsing stage.
// Model-call and extraction failures are absorbed here; they never
// propagate past the stage boundary.
type ResumeParseResult struct {
	Success bool                     `json:"success"`
	Data    *models.CandidateProfile `json:"data"`
	Error   string                   `json:"error,omitempty"`
}

// ParseResume runs the first stage: one model call extracting the candidate
// profile from raw resume text. This is the entry gate for the pipeline; a
// failure here stops the run before the two more expensive stages.
func (p *ScreeningPipeline) ParseResume(ctx context.Context, resumeText string) ResumeParseResult {
	prompt := p.prompts.BuildResumeParsePrompt(resumeText)

	response, err := p.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return resumeParseFailure(err)
	}

	var profile models.CandidateProfile
	if err := ExtractJSON(response, &profile); err != nil {
		return resumeParseFailure(err)
	}

	return ResumeParseResult{Success: true, Data: &profile}
}

func resumeParseFailure(err error) ResumeParseResult {
	return ResumeParseResult{
		Success: false,
		Data:    &models.CandidateProfile{},
		Error:   fmt.Sprintf("Resume parsing failed: %v", err),
	}
}
