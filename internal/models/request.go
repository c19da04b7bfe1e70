package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	TextLength   int    `json:"text_length"`
}

type ScreenRequest struct {
	ResumeText      string `json:"resume_text"`
	DocumentID      string `json:"document_id"`
	JobRequirements string `json:"job_requirements"`
}

type ScreenResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string           `json:"id"`
	Status       string           `json:"status"`
	Result       *ScreeningResult `json:"result,omitempty"`
	ErrorMessage *string          `json:"error_message,omitempty"`
}

type SummaryResponse struct {
	TotalCandidates int     `json:"total_candidates"`
	Approved        int     `json:"approved"`
	Rejected        int     `json:"rejected"`
	ApprovalRate    float64 `json:"approval_rate"`
}
