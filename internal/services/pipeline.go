package services

import (
	"context"
	"fmt"
	"log"

	"talentgate/internal/models"
)

// ScreeningPipeline sequences the three model-backed stages for one
// candidate and assembles the result envelope. It holds no state across
// runs; independent candidates can be processed concurrently.
type ScreeningPipeline struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewScreeningPipeline(gemini GeminiService) *ScreeningPipeline {
	return &ScreeningPipeline{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

// ProcessCandidate runs resume parsing, job fit analysis, the threshold
// gate, and (for passing candidates) report generation. The recommendation
// is derived from overall_score alone; the analysis stage's own
// recommendation field is informational.
func (p *ScreeningPipeline) ProcessCandidate(ctx context.Context, resumeText, jobRequirements string) *models.ScreeningResult {
	log.Println("🔍 Step 1: Parsing resume...")
	parseResult := p.ParseResume(ctx, resumeText)
	if !parseResult.Success {
		return &models.ScreeningResult{
			Error: "Resume parsing failed",
			Details: &models.StageFailure{
				Success: false,
				Error:   parseResult.Error,
				Data:    parseResult.Data,
			},
		}
	}

	log.Println("📊 Step 2: Analyzing job fit...")
	analysisResult := p.AnalyzeJobFit(ctx, parseResult.Data, jobRequirements)
	if !analysisResult.Success {
		return &models.ScreeningResult{
			Error: "Job analysis failed",
			Details: &models.StageFailure{
				Success: false,
				Error:   analysisResult.Error,
				Data:    analysisResult.Data,
			},
		}
	}

	score := analysisResult.Data.OverallScore
	if score < models.PassingScore {
		return &models.ScreeningResult{
			Recommendation: models.RecommendationReject,
			Score:          &score,
			Reason:         fmt.Sprintf("Score below threshold (%d)", models.PassingScore),
			ParsedResume:   parseResult.Data,
			Analysis:       analysisResult.Data,
		}
	}

	log.Println("📄 Step 3: Generating HR report...")
	reportResult := p.GenerateReport(ctx, parseResult.Data, analysisResult.Data)

	// The report stage guarantees a usable report via its fallback, so a
	// passing score always yields a PROCEED envelope.
	return &models.ScreeningResult{
		Success:        true,
		Recommendation: models.RecommendationProceed,
		Score:          &score,
		ParsedResume:   parseResult.Data,
		Analysis:       analysisResult.Data,
		HRReport:       reportResult.Data,
		Warning:        reportResult.Warning,
	}
}
