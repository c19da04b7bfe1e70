package models

import (
	"encoding/json"
	"strings"
)

// CandidateProfile is the structured output of the resume parsing stage.
// Every field is optional on the wire; absent fields stay at their zero
// value instead of failing the run.
type CandidateProfile struct {
	Name            string        `json:"name,omitempty"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	ExperienceYears float64       `json:"experience_years,omitempty"`
	Skills          []string      `json:"skills,omitempty"`
	Education       EducationList `json:"education,omitempty"`
	WorkExperience  []string      `json:"work_experience,omitempty"`
	Certifications  []string      `json:"certifications,omitempty"`
}

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// EducationList normalizes the education field, which models return as a
// single object, an array of objects, or plain strings.
type EducationList []Education

func (e *EducationList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*e = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		list := make(EducationList, 0, len(raw))
		for _, item := range raw {
			entry, err := unmarshalEducationEntry(item)
			if err != nil {
				return err
			}
			list = append(list, entry)
		}
		*e = list
		return nil
	default:
		entry, err := unmarshalEducationEntry(data)
		if err != nil {
			return err
		}
		*e = EducationList{entry}
		return nil
	}
}

func unmarshalEducationEntry(data []byte) (Education, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Education{}, err
		}
		return Education{Degree: s}, nil
	}

	var edu Education
	if err := json.Unmarshal(data, &edu); err != nil {
		return Education{}, err
	}
	return edu, nil
}

// Flatten renders the education history for the spreadsheet row, e.g.
// "BSc Computer Science from MIT | MSc AI from Stanford".
func (e EducationList) Flatten() string {
	if len(e) == 0 {
		return "N/A"
	}

	parts := make([]string, 0, len(e))
	for _, edu := range e {
		switch {
		case edu.Degree != "" && edu.Institution != "":
			parts = append(parts, edu.Degree+" from "+edu.Institution)
		case edu.Degree != "":
			parts = append(parts, edu.Degree)
		case edu.Institution != "":
			parts = append(parts, edu.Institution)
		}
	}

	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, " | ")
}
