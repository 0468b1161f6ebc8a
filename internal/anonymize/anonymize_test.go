package anonymize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "email",
			input:  "Contact: jane.doe@example.com today",
			expect: "Contact: [EMAIL] today",
		},
		{
			name:   "email without tld is kept",
			input:  "user@localhost",
			expect: "user@localhost",
		},
		{
			name:   "phone",
			input:  "Phone +1 555-123-4567",
			expect: "Phone [PHONE]",
		},
		{
			name:   "short numbers are kept",
			input:  "Class of 2019",
			expect: "Class of 2019",
		},
		{
			name:   "profile links",
			input:  "linkedin.com/in/jane-doe and github.com/janedoe",
			expect: "[LINK] and [LINK]",
		},
		{
			name:   "empty",
			input:  "",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Text(tt.input))
		})
	}
}
