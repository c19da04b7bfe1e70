package models

// Recommendation values for a screening run. The orchestrator derives the
// final recommendation from the overall score; the model's own
// recommendation field is stored but treated as advisory.
const (
	RecommendationProceed = "PROCEED"
	RecommendationReject  = "REJECT"
)

// PassingScore is the inclusive threshold separating rejection from the
// report-generation stage.
const PassingScore = 70

// FitAnalysis is the structured output of the job analysis stage.
type FitAnalysis struct {
	OverallScore    int      `json:"overall_score"`
	SkillMatches    []string `json:"skill_matches,omitempty"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
	Recommendation  string   `json:"recommendation,omitempty"`
	AnalysisSummary string   `json:"analysis_summary,omitempty"`
}
