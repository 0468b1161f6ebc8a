// Package anonymize redacts contact details from resume text.
package anonymize

import "regexp"

const (
	EmailMask = "[EMAIL]"
	PhoneMask = "[PHONE]"
	LinkMask  = "[LINK]"
)

var (
	emailPattern = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
	linkPattern  = regexp.MustCompile(`(linkedin\.com/in/\S+|github\.com/\S+)`)
)

// Text replaces email addresses, phone-like digit runs and LinkedIn or
// GitHub profile links with fixed masks. Emails are masked first so that
// digits inside them are not taken for phone numbers.
func Text(s string) string {
	s = emailPattern.ReplaceAllLiteralString(s, EmailMask)
	s = phonePattern.ReplaceAllLiteralString(s, PhoneMask)
	return linkPattern.ReplaceAllLiteralString(s, LinkMask)
}
