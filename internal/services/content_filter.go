package services

import (
	"regexp"

	"github.com/dadprep/dadprep-backend/internal/apperr"
)

var BannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"ass", "asshole", "bastard", "bitch", "cunt",
	"nigger", "nigga", "chink", "spic", "kike", "faggot", "fag",
	"retard", "retarded", "tranny",
	"porn", "porno", "nude", "nudes",
	"spam", "scam", "scammer", "phishing", "malware",
}

const (
	ReasonLanguage    = "inappropriate_language"
	ReasonURL         = "url_not_allowed"
	ReasonContactInfo = "contact_info_not_allowed"
	ReasonSpam        = "spam_detected"
)

var rejectionMessages = map[string]string{
	ReasonLanguage:    "Please keep it family friendly.",
	ReasonURL:         "Links are not allowed here.",
	ReasonContactInfo: "Contact details are not allowed here.",
	ReasonSpam:        "That looks like spam.",
}

// ContentFilter screens short user text that other people may see, such as
// display names on shared profiles and personal baby names.
type ContentFilter struct {
	bannedWordRegexps   []*regexp.Regexp
	urlPattern          *regexp.Regexp
	emailPattern        *regexp.Regexp
	phonePattern        *regexp.Regexp
	repeatedCharPattern *regexp.Regexp
}

func NewContentFilter() *ContentFilter {
	f := &ContentFilter{
		bannedWordRegexps:   make([]*regexp.Regexp, 0, len(BannedWords)),
		urlPattern:          regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`),
		emailPattern:        regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
		phonePattern:        regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		repeatedCharPattern: regexp.MustCompile(`(?i)(a{4,}|b{4,}|c{4,}|d{4,}|e{4,}|f{4,}|g{4,}|h{4,}|i{4,}|j{4,}|k{4,}|l{4,}|m{4,}|n{4,}|o{4,}|p{4,}|q{4,}|r{4,}|s{4,}|t{4,}|u{4,}|v{4,}|w{4,}|x{4,}|y{4,}|z{4,}|!{4,}|\?{4,}|\.{4,})`),
	}
	for _, word := range BannedWords {
		f.bannedWordRegexps = append(f.bannedWordRegexps, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return f
}

// Reason returns why text is rejected, or "" when it is acceptable.
func (f *ContentFilter) Reason(text string) string {
	if text == "" {
		return ""
	}
	for _, re := range f.bannedWordRegexps {
		if re.MatchString(text) {
			return ReasonLanguage
		}
	}
	switch {
	case f.urlPattern.MatchString(text):
		return ReasonURL
	case f.emailPattern.MatchString(text), f.phonePattern.MatchString(text):
		return ReasonContactInfo
	case f.repeatedCharPattern.MatchString(text):
		return ReasonSpam
	}
	return ""
}

// Check returns a validation error for the first rejected text. A nil
// filter accepts everything.
func (f *ContentFilter) Check(texts ...string) error {
	if f == nil {
		return nil
	}
	for _, text := range texts {
		if reason := f.Reason(text); reason != "" {
			return apperr.NewValidation(rejectionMessages[reason])
		}
	}
	return nil
}
