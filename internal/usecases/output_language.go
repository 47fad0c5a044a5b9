package usecases

import "strings"

// SupportedOutputLanguages are the languages the prompt model is asked to answer in.
var SupportedOutputLanguages = []string{"en", "es", "ja"}

// PickOutputLanguage returns the two-letter prefix of the preferred language when it is
// supported, "en" otherwise.
func PickOutputLanguage(preferred string) string {
	cand := strings.ToLower(strings.TrimSpace(preferred))
	if len(cand) > 2 {
		cand = cand[:2]
	}
	for _, l := range SupportedOutputLanguages {
		if l == cand {
			return cand
		}
	}
	return "en"
}
