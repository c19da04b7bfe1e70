package models

// HRReport is produced by the report generation stage, only for candidates
// that pass the score gate. It is assembled once per run and never mutated;
// when question generation fails it is replaced wholesale by the fallback
// report, never partially filled.
type HRReport struct {
	FormattedResume        CandidateProfile `json:"formatted_resume"`
	AnalysisSummary        FitAnalysis      `json:"analysis_summary"`
	InterviewQuestions     []string         `json:"interview_questions"`
	InterviewEmailTemplate string           `json:"interview_email_template"`
}
