package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"talentgate/internal/models"
)

type fakeGeminiResponse struct {
	text string
	err  error
}

// fakeGemini serves scripted responses in order and records every call so
// tests can assert how many model calls a run made.
type fakeGemini struct {
	responses []fakeGeminiResponse
	calls     int
	prompts   []string
}

func (f *fakeGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if len(f.responses) == 0 {
		return "", errors.New("unexpected model call")
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	return next.text, next.err
}

const profileJSON = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "555-0100",
	"experience_years": 5,
	"skills": ["Go", "SQL", "Docker", "Kubernetes"],
	"education": [{"degree": "BSc Computer Science", "institution": "MIT"}],
	"work_experience": ["Backend Engineer at Acme"],
	"certifications": ["CKA"]
}`

func analysisJSON(score int) string {
	return fmt.Sprintf(`{
		"overall_score": %d,
		"skill_matches": ["Go", "SQL"],
		"missing_skills": ["Terraform"],
		"recommendation": "PROCEED",
		"analysis_summary": "Solid backend profile."
	}`, score)
}

const questionsJSON = `{"interview_questions": [
	"Walk us through a Go service you designed.",
	"How do you approach schema migrations?",
	"Describe a production incident you resolved.",
	"How do you test concurrent code?",
	"What draws you to this role?"
]}`

func newTestPipeline(responses ...fakeGeminiResponse) (*ScreeningPipeline, *fakeGemini) {
	gemini := &fakeGemini{responses: responses}
	return NewScreeningPipeline(gemini), gemini
}

func TestPipelineResumeParseFailureTerminatesRun(t *testing.T) {
	pipeline, gemini := newTestPipeline(
		fakeGeminiResponse{text: "Sorry, I cannot process this."},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Error != "Resume parsing failed" {
		t.Errorf("expected terminal error, got %q", result.Error)
	}
	if result.Score != nil {
		t.Error("score must be absent when parsing fails")
	}
	if result.Details == nil || result.Details.Error == "" {
		t.Error("expected stage diagnostic in details")
	}
	if gemini.calls != 1 {
		t.Errorf("expected 1 model call, got %d", gemini.calls)
	}
}

func TestPipelineJobAnalysisFailureFailsClosed(t *testing.T) {
	pipeline, gemini := newTestPipeline(
		fakeGeminiResponse{text: profileJSON},
		fakeGeminiResponse{err: errors.New("rate limited")},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Error != "Job analysis failed" {
		t.Errorf("expected terminal error, got %q", result.Error)
	}
	if gemini.calls != 2 {
		t.Errorf("expected 2 model calls, got %d", gemini.calls)
	}

	analysis, ok := result.Details.Data.(*models.FitAnalysis)
	if !ok {
		t.Fatalf("expected fail-closed analysis in details, got %T", result.Details.Data)
	}
	if analysis.OverallScore != 0 || analysis.Recommendation != models.RecommendationReject {
		t.Errorf("expected zero-score rejection default, got %+v", analysis)
	}
}

func TestPipelineRejectsBelowThreshold(t *testing.T) {
	pipeline, gemini := newTestPipeline(
		fakeGeminiResponse{text: profileJSON},
		fakeGeminiResponse{text: analysisJSON(45)},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Recommendation != models.RecommendationReject {
		t.Errorf("expected REJECT, got %q", result.Recommendation)
	}
	if result.Score == nil || *result.Score != 45 {
		t.Errorf("expected score 45, got %v", result.Score)
	}
	if result.Reason != "Score below threshold (70)" {
		t.Errorf("unexpected reason %q", result.Reason)
	}
	if result.HRReport != nil {
		t.Error("rejected candidates must not carry an hr_report")
	}
	if result.ParsedResume == nil || result.Analysis == nil {
		t.Error("rejection envelope must keep both prior structures")
	}
	if gemini.calls != 2 {
		t.Errorf("report stage must not be invoked on rejection; got %d calls", gemini.calls)
	}
}

func TestPipelineThresholdIsInclusive(t *testing.T) {
	pipeline, gemini := newTestPipeline(
		fakeGeminiResponse{text: profileJSON},
		fakeGeminiResponse{text: analysisJSON(70)},
		fakeGeminiResponse{text: questionsJSON},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Recommendation != models.RecommendationProceed {
		t.Errorf("score 70 must proceed, got %q", result.Recommendation)
	}
	if gemini.calls != 3 {
		t.Errorf("expected 3 model calls, got %d", gemini.calls)
	}
}

func TestPipelineIgnoresModelRecommendation(t *testing.T) {
	// The model contradicts its own score; the gate must follow the score.
	contradictory := strings.Replace(analysisJSON(45), `"PROCEED"`, `"PROCEED "`, 1)

	pipeline, _ := newTestPipeline(
		fakeGeminiResponse{text: profileJSON},
		fakeGeminiResponse{text: contradictory},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Recommendation != models.RecommendationReject {
		t.Errorf("gate must re-derive the decision from the score, got %q", result.Recommendation)
	}
}

func TestPipelineProceedSurvivesReportFailure(t *testing.T) {
	pipeline, gemini := newTestPipeline(
		fakeGeminiResponse{text: profileJSON},
		fakeGeminiResponse{text: analysisJSON(85)},
		fakeGeminiResponse{err: errors.New("model exploded")},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Recommendation != models.RecommendationProceed {
		t.Fatalf("expected PROCEED, got %q", result.Recommendation)
	}
	if !result.Success {
		t.Error("proceed envelope must report success")
	}
	if result.Score == nil || *result.Score != 85 {
		t.Errorf("expected score 85, got %v", result.Score)
	}
	if result.Warning == "" {
		t.Error("fallback report must surface a warning")
	}
	if result.HRReport == nil {
		t.Fatal("expected a structurally valid hr_report")
	}
	if len(result.HRReport.InterviewQuestions) != 5 {
		t.Errorf("expected 5 fallback questions, got %d", len(result.HRReport.InterviewQuestions))
	}
	if result.HRReport.InterviewEmailTemplate == "" {
		t.Error("fallback report must still carry the email template")
	}
	if !reflect.DeepEqual(result.HRReport.InterviewQuestions, fallbackQuestions) {
		t.Error("fallback report must use the generic question set")
	}
	if gemini.calls != 3 {
		t.Errorf("expected 3 model calls, got %d", gemini.calls)
	}
}

func TestPipelineReportFallbackOnWrongQuestionCount(t *testing.T) {
	pipeline, _ := newTestPipeline(
		fakeGeminiResponse{text: profileJSON},
		fakeGeminiResponse{text: analysisJSON(90)},
		fakeGeminiResponse{text: `{"interview_questions": ["only", "three", "questions"]}`},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Warning == "" {
		t.Error("short question list must trigger the fallback warning")
	}
	if !reflect.DeepEqual(result.HRReport.InterviewQuestions, fallbackQuestions) {
		t.Error("short question list must be replaced wholesale by the fallback set")
	}
}

func TestPipelineSuccessEnvelope(t *testing.T) {
	pipeline, _ := newTestPipeline(
		fakeGeminiResponse{text: "```json\n" + profileJSON + "\n```"},
		fakeGeminiResponse{text: analysisJSON(85)},
		fakeGeminiResponse{text: questionsJSON},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	if result.Warning != "" {
		t.Errorf("clean run must not carry a warning, got %q", result.Warning)
	}
	if result.HRReport == nil || len(result.HRReport.InterviewQuestions) != 5 {
		t.Fatal("expected 5 model-generated questions")
	}
	if result.HRReport.InterviewQuestions[0] != "Walk us through a Go service you designed." {
		t.Error("expected the model's questions in the report")
	}
	if result.HRReport.FormattedResume.Name != "Jane Doe" {
		t.Error("report must embed the parsed profile")
	}
	if result.HRReport.AnalysisSummary.OverallScore != 85 {
		t.Error("report must embed the fit analysis")
	}
}

func TestProceedEnvelopeRoundTrip(t *testing.T) {
	pipeline, _ := newTestPipeline(
		fakeGeminiResponse{text: profileJSON},
		fakeGeminiResponse{text: analysisJSON(85)},
		fakeGeminiResponse{text: questionsJSON},
	)

	result := pipeline.ProcessCandidate(context.Background(), "resume text", "job text")

	first, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored models.ScreeningResult
	if err := json.Unmarshal(first, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	second, err := json.Marshal(&restored)
	if err != nil {
		t.Fatalf("re-marshal failed: %v", err)
	}

	var before, after map[string]interface{}
	if err := json.Unmarshal(first, &before); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(second, &after); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(before, after) {
		t.Errorf("round trip lost structure:\nbefore: %v\nafter:  %v", before, after)
	}
}
