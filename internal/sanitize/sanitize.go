// Package sanitize redacts sensitive content from model-generated text.
//
// Every model response passes through a Sanitizer before leaving the
// service. Redaction runs before length truncation so a mid-match cut
// cannot leak a partial email address or URL.
package sanitize

import (
	"regexp"
	"strings"
)

// Redaction tokens substituted for matched content.
const (
	emailToken = "[redacted]"
	orgToken   = "[redacted organization]"
	urlToken   = "[redacted url]"

	// ellipsis marks responses cut at the length cap.
	ellipsis = "..."
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlPattern   = regexp.MustCompile(`https?://\S+`)
)

// Sanitizer is a pure text transform. Safe for unrestricted concurrent use.
type Sanitizer struct {
	orgPattern *regexp.Regexp // nil when no organization variants configured
	maxLen     int
}

// New creates a Sanitizer that redacts the given organization-name variants
// (case-insensitive, whitespace between words is flexible) and truncates
// output to maxLen runes. maxLen <= 0 disables truncation.
func New(orgVariants []string, maxLen int) *Sanitizer {
	return &Sanitizer{
		orgPattern: compileOrgPattern(orgVariants),
		maxLen:     maxLen,
	}
}

// compileOrgPattern builds a single word-bounded alternation over all
// variants. Longer variants are listed first so "Acme Corp Ltd" wins over
// "Acme" on overlapping input.
func compileOrgPattern(variants []string) *regexp.Regexp {
	cleaned := make([]string, 0, len(variants))
	for _, v := range variants {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		cleaned = append(cleaned, v)
	}
	if len(cleaned) == 0 {
		return nil
	}

	alts := make([]string, len(cleaned))
	for i, v := range cleaned {
		alts[i] = strings.ReplaceAll(regexp.QuoteMeta(v), ` `, `\s*`)
	}
	// RE2 alternation is preference-ordered, so sort longest first.
	for i := range alts {
		for j := i + 1; j < len(alts); j++ {
			if len(alts[j]) > len(alts[i]) {
				alts[i], alts[j] = alts[j], alts[i]
			}
		}
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(alts, "|") + `)\b`)
}

// Sanitize redacts emails, organization names, and URLs, then enforces the
// length cap. Idempotent: applying it to already-sanitized text is a no-op.
func (s *Sanitizer) Sanitize(text string) string {
	text = emailPattern.ReplaceAllString(text, emailToken)
	if s.orgPattern != nil {
		text = s.orgPattern.ReplaceAllString(text, orgToken)
	}
	text = urlPattern.ReplaceAllString(text, urlToken)

	if s.maxLen > 0 {
		runes := []rune(text)
		if len(runes) > s.maxLen {
			text = string(runes[:s.maxLen]) + ellipsis
		}
	}
	return text
}
