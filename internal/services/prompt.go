package services

import (
	"encoding/json"
	"fmt"

	"talentgate/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeParsePrompt creates the prompt for the resume parsing stage.
func (pb *PromptBuilder) BuildResumeParsePrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume parser. Your job is to extract and structure resume information into JSON format.

Extract the following information from the resume:
- name
- email
- phone
- experience_years (estimate from work history, as a number)
- skills (list of technical skills)
- education (list of objects with degree and institution)
- work_experience (list of job titles and companies)
- certifications (list, may be empty)

Return ONLY a valid JSON object without any markdown formatting or code blocks.

Resume to parse:
%s`, resumeText)
}

// BuildJobAnalysisPrompt creates the prompt for the job fit analysis stage.
// The threshold guidance is stated to the model, but the final accept or
// reject decision is re-derived from overall_score by the pipeline.
func (pb *PromptBuilder) BuildJobAnalysisPrompt(profile *models.CandidateProfile, jobRequirements string) string {
	resumeSummary, _ := json.MarshalIndent(profile, "", "  ")

	return fmt.Sprintf(`You are a job fit analyzer. Compare the candidate's resume with the job requirements and provide a detailed analysis.

Your tasks:
1. Analyze skill matches between resume and job requirements
2. Calculate an overall score (0-100) based on:
   - Skill alignment (40%%)
   - Experience relevance (30%%)
   - Education fit (20%%)
   - Certifications bonus (10%%)
3. Provide recommendations

If the score is below %d, recommend rejection.
If %d or above, recommend proceeding with interview.

Return ONLY a valid JSON object with:
- overall_score (integer)
- skill_matches (list)
- missing_skills (list)
- recommendation (PROCEED/REJECT)
- analysis_summary (string)

Resume Data:
%s

Job Requirements:
%s

Analyze and score this candidate.`, models.PassingScore, models.PassingScore, resumeSummary, jobRequirements)
}

// BuildInterviewQuestionsPrompt creates the prompt for the report stage.
func (pb *PromptBuilder) BuildInterviewQuestionsPrompt(profile *models.CandidateProfile, analysis *models.FitAnalysis) string {
	resumeData, _ := json.MarshalIndent(profile, "", "  ")
	analysisData, _ := json.MarshalIndent(analysis, "", "  ")

	return fmt.Sprintf(`You are an HR report generator. Create interview questions based on the candidate analysis.

Resume Data:
%s

Analysis Data:
%s

Generate exactly 5 relevant interview questions based on the candidate's background and the job requirements.

Return ONLY a valid JSON object with:
- interview_questions (list of exactly 5 strings)

Do not include any markdown formatting.`, resumeData, analysisData)
}
