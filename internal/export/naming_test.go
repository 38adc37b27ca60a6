package export

import (
	"testing"
	"time"
)

func TestDeriveFileName(t *testing.T) {
	date := time.Date(2024, 1, 8, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		projectName string
		format      Format
		want        string
	}{
		{"json format", "My Project", FormatJSON, "my-project-2024-01-08.json"},
		{"markdown format", "My Project", FormatMarkdown, "my-project-2024-01-08.md"},
		{"plan format", "My Project", FormatPlan, "my-project-plan-2024-01-08.md"},
		{"whitespace run collapsed", "My   Spaced\tProject", FormatJSON, "my-spaced-project-2024-01-08.json"},
		{"mixed case", "RELEASE Planning", FormatMarkdown, "release-planning-2024-01-08.md"},
		{"unsafe characters dropped", "Q1/Q2 Roadmap!", FormatJSON, "q1q2-roadmap-2024-01-08.json"},
		{"empty name falls back", "", FormatJSON, "untitled-2024-01-08.json"},
		{"only unsafe characters falls back", "???", FormatPlan, "untitled-plan-2024-01-08.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveFileName(tt.projectName, tt.format, date); got != tt.want {
				t.Errorf("DeriveFileName(%q, %s) = %q, want %q", tt.projectName, tt.format, got, tt.want)
			}
		})
	}
}

func TestDeriveFileName_Deterministic(t *testing.T) {
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	first := DeriveFileName("My Project", FormatPlan, date)
	second := DeriveFileName("My Project", FormatPlan, date)
	if first != second {
		t.Errorf("same inputs produced different names: %q vs %q", first, second)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value  string
		want   Format
		wantOK bool
	}{
		{"json", FormatJSON, true},
		{"markdown", FormatMarkdown, true},
		{"plan-feature", FormatPlan, true},
		{"md", "", false},
		{"plan", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := ParseFormat(tt.value)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseFormat(%q) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "application/json"},
		{FormatMarkdown, "text/markdown"},
		{FormatPlan, "text/markdown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := MediaType(tt.format); got != tt.want {
				t.Errorf("MediaType(%s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
