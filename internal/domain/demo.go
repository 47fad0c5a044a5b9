package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var medicalTerms = []string{
	"medical", "health", "doctor", "patient", "treatment",
	"diagnosis", "therapy", "medicine", "clinical", "hospital",
}

// DemoSummary returns the canned summary used when no summarizer tier is available.
// Medical content gets its own template.
func DemoSummary(text string) string {
	lower := strings.ToLower(text)
	for _, term := range medicalTerms {
		if strings.Contains(lower, term) {
			return "📋 Medical Summary (Demo Mode):\n\n" +
				"• This content appears to be medical-related\n" +
				"• Key topics may include health information and treatments\n" +
				"• For accurate medical information, consult healthcare professionals\n\n" +
				"⚠️ This is a demo response - the on-device AI model is not available"
		}
	}

	return "📄 Content Summary (Demo Mode):\n\n" +
		"• This page contains textual content that would be analyzed\n" +
		"• Key points and main topics would be identified\n" +
		"• Important information would be highlighted\n" +
		"• Content would be condensed for easier reading\n\n" +
		"⚠️ This is a demo response - the on-device AI model is not available"
}

// DemoTranslation returns the canned translation placeholder for a target language.
func DemoTranslation(_ string, targetLang string) string {
	name := LanguageName(targetLang)
	return fmt.Sprintf(
		"🔤 Demo Translation to %s:\n\n[This would be the translated version of your summary in %s]\n\n⚠️ This is a demo response - the on-device translation AI is not available",
		name, name,
	)
}

// DemoRewrite returns the placeholder for writer and rewriter capabilities.
func DemoRewrite(text string) string {
	return "✍️ Rewrite (Demo Mode):\n\n" + TruncateRunes(strings.TrimSpace(text), 500) +
		"\n\n⚠️ This is a demo response - the on-device writing AI is not available"
}

// DemoImageAnalysis returns the placeholder for multimodal prompts.
func DemoImageAnalysis(string) string {
	return "🖼️ Image Analysis (Demo Mode):\n\n" +
		"• The image would be described here\n" +
		"• Objects, text and context would be identified\n\n" +
		"⚠️ This is a demo response - the on-device multimodal AI is not available"
}

var languageNames = map[string]string{
	"af": "Afrikaans", "am": "Amharic", "ar": "Arabic", "bg": "Bulgarian", "bn": "Bengali",
	"ca": "Catalan", "cs": "Czech", "da": "Danish", "de": "German", "el": "Greek",
	"en": "English", "es": "Spanish", "et": "Estonian", "fa": "Persian (Farsi)", "fi": "Finnish",
	"fr": "French", "gu": "Gujarati", "he": "Hebrew", "hi": "Hindi", "hr": "Croatian",
	"hu": "Hungarian", "id": "Indonesian", "it": "Italian", "ja": "Japanese", "km": "Khmer",
	"kn": "Kannada", "ko": "Korean", "lo": "Lao", "lt": "Lithuanian", "lv": "Latvian",
	"mk": "Macedonian", "ml": "Malayalam", "mr": "Marathi", "ms": "Malay", "my": "Burmese",
	"ne": "Nepali", "nl": "Dutch", "no": "Norwegian", "or": "Odia", "pa": "Punjabi",
	"pl": "Polish", "pt": "Portuguese", "pt-br": "Portuguese (Brazil)", "ro": "Romanian",
	"ru": "Russian", "si": "Sinhala", "sk": "Slovak", "sl": "Slovenian", "sq": "Albanian",
	"sr": "Serbian", "sv": "Swedish", "sw": "Swahili", "ta": "Tamil", "te": "Telugu",
	"th": "Thai", "tr": "Turkish", "uk": "Ukrainian", "ur": "Urdu", "vi": "Vietnamese",
	"zh": "Chinese (Simplified)", "zh-tw": "Chinese (Traditional)",
}

// LanguageName maps a BCP 47 language code to its English name, falling back to the CLDR
// display names and finally to the upper-cased code.
func LanguageName(code string) string {
	lc := strings.ToLower(strings.TrimSpace(code))
	if name, ok := languageNames[lc]; ok {
		return name
	}
	if tag, err := language.Parse(lc); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return strings.ToUpper(code)
}
