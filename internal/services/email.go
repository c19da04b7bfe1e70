package services

import (
	"fmt"
	"time"
)

// GenerateInterviewEmail formats the interview invitation. No model call,
// no I/O; the only non-determinism is the wall-clock date embedded in the
// proposed slots. Both the report stage and its fallback path call this
// identically.
func GenerateInterviewEmail(candidateName, candidateEmail, skillsCSV string, score int) string {
	return generateInterviewEmailAt(candidateName, candidateEmail, skillsCSV, score, time.Now())
}

func generateInterviewEmailAt(candidateName, candidateEmail, skillsCSV string, score int, now time.Time) string {
	if candidateName == "" {
		candidateName = "Candidate"
	}
	if candidateEmail == "" {
		candidateEmail = "candidate@email.com"
	}
	if skillsCSV == "" {
		skillsCSV = "your technical skills"
	}

	currentDate := now.Format("January 2, 2006")

	return fmt.Sprintf(`Subject: Interview Invitation - HR Position

Dear %s,

Thank you for your interest in joining our team! Based on your resume review, we are impressed with your skills in %s and your overall qualification score of %d/100.

We would like to invite you for an interview. Please choose one of the following time slots:

**Available Slots:**
- Monday, %s at 10:00 AM
- Tuesday, %s at 2:00 PM
- Wednesday, %s at 11:00 AM

Please reply to this email (%s) with your preferred time slot.

**Interview Details:**
- Duration: 45 minutes
- Format: Video call (link will be shared)
- Focus areas: Technical skills, experience, cultural fit

We look forward to speaking with you!

Best regards,
HR Team
Company Name`,
		candidateName, skillsCSV, score,
		currentDate, currentDate, currentDate,
		candidateEmail)
}
