package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedOutputError is returned when a model response is not a valid
// JSON document after fence stripping. It keeps the original response text
// for diagnostics.
type MalformedOutputError struct {
	Response string
	Err      error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// ExtractJSON parses one model response into target. Models routinely wrap
// JSON in a fenced code block; the fence (with an optional language tag) is
// stripped before parsing. Anything that is not strict JSON after stripping
// fails with MalformedOutputError: garbage input must not silently become a
// half-populated profile.
func ExtractJSON(response string, target interface{}) error {
	payload := StripCodeFence(response)

	if err := json.Unmarshal([]byte(payload), target); err != nil {
		return &MalformedOutputError{Response: response, Err: err}
	}

	return nil
}

// StripCodeFence removes a surrounding markdown code fence, leaving the
// inner payload untouched. Text without a fence passes through unchanged,
// so stripping is idempotent.
func StripCodeFence(text string) string {
	clean := strings.TrimSpace(text)

	if !strings.HasPrefix(clean, "```") {
		return clean
	}

	clean = strings.TrimPrefix(clean, "```")

	// Drop the language tag on the opening fence line, e.g. ```json
	if idx := strings.IndexAny(clean, "\r\n"); idx >= 0 {
		firstLine := strings.TrimSpace(clean[:idx])
		if !strings.ContainsAny(firstLine, "{[\"") {
			clean = clean[idx:]
		}
	} else {
		clean = strings.TrimPrefix(clean, "json")
	}

	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}
