package mapping

import "regexp"

// Fallback patterns over raw document text, used only when structured
// extraction produced nothing for the corresponding field.
var (
	emailRe = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?\d{0,2}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// FindEmail returns the first email-shaped token in text, or "".
func FindEmail(text string) string {
	return emailRe.FindString(text)
}

// FindPhone returns the first phone-shaped token in text reduced to
// digits (at most ten, like structured phone extraction), or "".
func FindPhone(text string) string {
	match := phoneRe.FindString(text)
	if match == "" {
		return ""
	}
	return normalizePhoneDigits(match)
}
