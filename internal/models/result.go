package models

// StageFailure carries the diagnostic envelope of a failed pipeline stage.
// Data holds whatever default payload the stage produced (empty for resume
// parsing, a fail-closed analysis for job analysis).
type StageFailure struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Data    interface{} `json:"data"`
}

// ScreeningResult is the envelope returned by one end-to-end pipeline run
// and the sole input to persistence and display collaborators. Exactly one
// of three shapes is produced: a terminal error (Error + Details, no score),
// a rejection (recommendation, score, reason, both prior structures), or a
// proceed result carrying the HR report.
type ScreeningResult struct {
	Success        bool              `json:"success,omitempty"`
	Recommendation string            `json:"recommendation,omitempty"`
	Score          *int              `json:"score,omitempty"`
	Reason         string            `json:"reason,omitempty"`
	ParsedResume   *CandidateProfile `json:"parsed_resume,omitempty"`
	Analysis       *FitAnalysis      `json:"analysis,omitempty"`
	HRReport       *HRReport         `json:"hr_report,omitempty"`
	Warning        string            `json:"warning,omitempty"`
	Error          string            `json:"error,omitempty"`
	Details        *StageFailure     `json:"details,omitempty"`
}

// Failed reports whether the run terminated before the score gate.
func (r *ScreeningResult) Failed() bool {
	return r.Error != ""
}
