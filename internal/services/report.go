package services

import (
	"context"
	"fmt"
	"strings"

	"talentgate/internal/models"
)

const interviewQuestionCount = 5

// fallbackQuestions replaces model-generated questions whenever question
// generation fails. Generic on purpose: the report must stay structurally
// complete even when the model does not cooperate.
var fallbackQuestions = []string{
	"Tell us about your experience with the technologies mentioned in your resume.",
	"How do you stay updated with the latest trends in your field?",
	"Describe a challenging project you worked on and how you overcame obstacles.",
	"What interests you most about this role and our company?",
	"Where do you see yourself in the next 3-5 years?",
}

// ReportResult is the outcome of the report generation stage. The stage has
// no failure mode visible to its caller: Success is always true and Data is
// always a complete report, with Warning set when the fallback was used.
type ReportResult struct {
	Success bool             `json:"success"`
	Data    *models.HRReport `json:"data"`
	Warning string           `json:"warning,omitempty"`
}

type interviewQuestionsResponse struct {
	InterviewQuestions []string `json:"interview_questions"`
}

// GenerateReport runs the third stage. The email template is built
// deterministically; only the interview questions come from the model. Any
// failure there swaps in the fallback report wholesale.
func (p *ScreeningPipeline) GenerateReport(ctx context.Context, profile *models.CandidateProfile, analysis *models.FitAnalysis) ReportResult {
	email := GenerateInterviewEmail(profile.Name, profile.Email, topSkillsCSV(profile.Skills), analysis.OverallScore)

	questions, err := p.generateQuestions(ctx, profile, analysis)
	if err != nil {
		return ReportResult{
			Success: true,
			Data:    buildReport(profile, analysis, fallbackQuestions, email),
			Warning: fmt.Sprintf("AI generation failed, using fallback: %v", err),
		}
	}

	return ReportResult{
		Success: true,
		Data:    buildReport(profile, analysis, questions, email),
	}
}

func (p *ScreeningPipeline) generateQuestions(ctx context.Context, profile *models.CandidateProfile, analysis *models.FitAnalysis) ([]string, error) {
	prompt := p.prompts.BuildInterviewQuestionsPrompt(profile, analysis)

	response, err := p.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed interviewQuestionsResponse
	if err := ExtractJSON(response, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.InterviewQuestions) != interviewQuestionCount {
		return nil, fmt.Errorf("expected %d interview questions, got %d", interviewQuestionCount, len(parsed.InterviewQuestions))
	}

	return parsed.InterviewQuestions, nil
}

func buildReport(profile *models.CandidateProfile, analysis *models.FitAnalysis, questions []string, email string) *models.HRReport {
	return &models.HRReport{
		FormattedResume:        *profile,
		AnalysisSummary:        *analysis,
		InterviewQuestions:     questions,
		InterviewEmailTemplate: email,
	}
}

func topSkillsCSV(skills []string) string {
	if len(skills) > 3 {
		skills = skills[:3]
	}
	return strings.Join(skills, ", ")
}
