package services

import (
	"errors"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	payload := `{"name": "Jane Doe", "skills": ["Go", "SQL"]}`

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json", payload, payload},
		{"fenced with language tag", "```json\n" + payload + "\n```", payload},
		{"fenced without language tag", "```\n" + payload + "\n```", payload},
		{"fenced single line", "```json" + payload + "```", payload},
		{"surrounding whitespace", "  \n```json\n" + payload + "\n```\n  ", payload},
		{"no fence with whitespace", "\n " + payload + " \n", payload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.want {
				t.Errorf("StripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripCodeFenceIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\": 1}\n```",
		"{\"a\": 1}",
		"```\n[1, 2, 3]\n```",
	}

	for _, input := range inputs {
		once := StripCodeFence(input)
		twice := StripCodeFence(once)
		if once != twice {
			t.Errorf("stripping %q twice changed the result: %q vs %q", input, once, twice)
		}
	}
}

func TestExtractJSONFencedEqualsUnwrapped(t *testing.T) {
	payload := `{"overall_score": 85, "recommendation": "PROCEED"}`

	var fromFenced, fromPlain map[string]interface{}
	if err := ExtractJSON("```json\n"+payload+"\n```", &fromFenced); err != nil {
		t.Fatalf("fenced extraction failed: %v", err)
	}
	if err := ExtractJSON(payload, &fromPlain); err != nil {
		t.Fatalf("plain extraction failed: %v", err)
	}

	if fromFenced["overall_score"] != fromPlain["overall_score"] ||
		fromFenced["recommendation"] != fromPlain["recommendation"] {
		t.Errorf("fenced and plain extraction disagree: %v vs %v", fromFenced, fromPlain)
	}
}

func TestExtractJSONMalformed(t *testing.T) {
	inputs := []string{
		"Sorry, I cannot process this.",
		"```json\nnot json at all\n```",
		"",
		"{\"truncated\": ",
	}

	for _, input := range inputs {
		var target map[string]interface{}
		err := ExtractJSON(input, &target)
		if err == nil {
			t.Fatalf("expected error for %q", input)
		}

		var malformed *MalformedOutputError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedOutputError for %q, got %T", input, err)
		}
		if malformed.Response != input {
			t.Errorf("diagnostic should carry the original text, got %q", malformed.Response)
		}
	}
}
