package ai

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy     = bluemonday.StrictPolicy()
	markdownReplacer = strings.NewReplacer("**", "", "__", "", "~~", "", "`", "")

	// Formatting tags models tend to emit. Anything else between angle
	// brackets is caption text.
	htmlTagPattern = regexp.MustCompile(`(?i)</?(?:a|b|br|code|div|em|h[1-6]|i|li|ol|p|s|span|strong|u|ul)(?:\s[^<>]*)?/?>`)
)

// StripMarkdown removes bold, underline, strike and code markers.
// Everything else, whitespace included, is left untouched.
func StripMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// SanitizeCaption turns model output into plain text: formatting tags and
// markdown markers are removed and surrounding whitespace trimmed. A '<'
// that does not open a known tag is kept as text.
func SanitizeCaption(s string) string {
	if htmlTagPattern.MatchString(s) {
		s = html.UnescapeString(strictPolicy.Sanitize(escapeStrayBrackets(s)))
	}
	return strings.TrimSpace(StripMarkdown(s))
}

func escapeStrayBrackets(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range htmlTagPattern.FindAllStringIndex(s, -1) {
		b.WriteString(strings.ReplaceAll(s[last:loc[0]], "<", "&lt;"))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(strings.ReplaceAll(s[last:], "<", "&lt;"))
	return b.String()
}

// NormalizeHashtags trims each tag, drops empty ones and ensures a leading #.
// Order is preserved.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(StripMarkdown(tag))
		tag = strings.TrimLeft(tag, "#")
		tag = strings.Join(strings.Fields(tag), "")
		if tag == "" {
			continue
		}
		out = append(out, "#"+tag)
	}
	return out
}

// ExtractJSON strips a surrounding markdown code fence, if any, from a
// model response so it can be decoded as JSON.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		// Drop the info string, e.g. ```json.
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
