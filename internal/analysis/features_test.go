package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFeatures(t *testing.T) {
	t.Parallel()

	features := ExtractFeatures("John Smith\njohn@x.com\n+1 555-123-4567\nPython, SQL, Leadership")

	assert.Equal(t, "John Smith", features.Name)
	assert.Equal(t, "john@x.com", features.Email)
	assert.Equal(t, "+1 555-123-4567", features.Phone)
	assert.Equal(t, []string{"leadership", "python", "sql"}, features.Skills)
	assert.Equal(t, "John Smith john@x.com +1 555-123-4567 Python, SQL, Leadership", features.SummaryPreview)
}

func TestExtractFeaturesEmpty(t *testing.T) {
	t.Parallel()

	features := ExtractFeatures("")

	assert.Equal(t, UnknownName, features.Name)
	assert.Equal(t, NotFound, features.Email)
	assert.Equal(t, NotFound, features.Phone)
	assert.Equal(t, []string{NoSkillsFound}, features.Skills)
	assert.Empty(t, features.SummaryPreview)
}

func TestExtractName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "first qualifying line wins",
			input:  "Jane Mary Doe\nJohn Smith",
			expect: "Jane Mary Doe",
		},
		{
			name:   "skips lines with wrong token count",
			input:  "Curriculum\nSenior Software Engineer Resume\nAda Lovelace",
			expect: "Ada Lovelace",
		},
		{
			name:   "skips lowercase lines",
			input:  "john smith\nJohn Smith",
			expect: "John Smith",
		},
		{
			name:   "only the first five lines are scanned",
			input:  "a\nb\nc\nd\ne\nJohn Smith",
			expect: UnknownName,
		},
		{
			name:   "leading blank lines are trimmed",
			input:  "\n\n  \nJohn Smith\n",
			expect: "John Smith",
		},
		{
			name:   "non-ascii uppercase",
			input:  "Élodie Durand",
			expect: "Élodie Durand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, ExtractName(tt.input))
		})
	}
}

func TestExtractEmailAndPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first.last@mail.example.org", ExtractEmail("mail: first.last@mail.example.org, alt@x.io"))
	// No TLD validation.
	assert.Equal(t, "user@localhost", ExtractEmail("user@localhost"))
	assert.Equal(t, NotFound, ExtractEmail("no address here"))

	assert.Equal(t, "555-123-4567", ExtractPhone("call 555-123-4567 now"))
	// Long numeric identifiers match as well.
	assert.Equal(t, "1234567890", ExtractPhone("employee id 1234567890"))
	assert.Equal(t, NotFound, ExtractPhone("room 42"))
	// PDF text often separates digit groups with no-break spaces.
	assert.Equal(t, "+1\u00a0555\u00a0123\u00a04567", ExtractPhone("tel +1\u00a0555\u00a0123\u00a04567"))
}

func TestExtractSkills(t *testing.T) {
	t.Parallel()

	skills := ExtractSkills("Built REST APIs in PYTHON and Django; strong Problem Solving.")
	assert.Equal(t, []string{"django", "problem solving", "python"}, skills)

	assert.Equal(t, []string{NoSkillsFound}, ExtractSkills("gardening"))

	custom := New(Vocabulary{Skills: []string{" Go ", "kubernetes", "go"}})
	assert.Equal(t, []string{"go", "kubernetes"}, custom.Skills())
	assert.Equal(t, []string{"go"}, custom.ExtractSkills("Golang developer"))
}

func TestSkillsNeverEmpty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", " ", "\n\n", "123", "java", "Résumé"} {
		require.NotEmpty(t, ExtractFeatures(input).Skills, "input %q", input)
	}
}

func TestSummaryPreview(t *testing.T) {
	t.Parallel()

	words := make([]string, 60)
	for i := range words {
		words[i] = "w"
	}

	preview := SummaryPreview(strings.Join(words, "\n\t "))
	assert.Len(t, strings.Fields(preview), 50)
	assert.Equal(t, strings.Join(words[:50], " "), preview)
}
