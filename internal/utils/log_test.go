package utils

import (
	"testing"

	"github.com/spigell/resume-scorer/internal/anonymize"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "non-positive limit drops the preview",
			input:  "Jane Doe\nData Scientist",
			limit:  0,
			expect: "",
		},
		{
			name:   "resume lines are joined",
			input:  "Jane Doe\n\nData Scientist\t Python",
			limit:  80,
			expect: "Jane Doe Data Scientist Python",
		},
		{
			name:   "cut after whitespace is collapsed",
			input:  "  Jane   Doe\r\nPython  ",
			limit:  8,
			expect: "Jane Doe...",
		},
		{
			name:   "multibyte runes are not split",
			input:  "Élodie Durand, Ingénieure données",
			limit:  20,
			expect: "Élodie Durand, Ingén...",
		},
		{
			name:   "masked contacts survive",
			input:  anonymize.Text("Jane Doe\njane@example.com\n+1 555-123-4567"),
			limit:  40,
			expect: "Jane Doe [EMAIL] [PHONE]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
