package domain

import (
	"regexp"
	"strings"
)

// Placeholders shown when a document has no inline style or script block.
const (
	PlaceholderCSS = "/* Generated CSS will appear here */"
	PlaceholderJS  = "/* Generated JavaScript will appear here */"
)

//nolint:gochecknoglobals // Compiled once
var (
	styleBlock  = regexp.MustCompile(`(?s)<style>(.*?)</style>`)
	scriptBlock = regexp.MustCompile(`(?s)<script>(.*?)</script>`)
)

// ParseArtifact splits a generated document into HTML, CSS and JS views.
// HTML is the document unchanged; CSS and JS are copies of the first inline
// block of each kind, or the placeholders when none is found.
func ParseArtifact(document string) ParsedArtifact {
	return ParsedArtifact{
		HTML: document,
		CSS:  firstBlock(styleBlock, document, PlaceholderCSS),
		JS:   firstBlock(scriptBlock, document, PlaceholderJS),
	}
}

func firstBlock(re *regexp.Regexp, document, placeholder string) string {
	match := re.FindStringSubmatch(document)
	if len(match) < 2 {
		return placeholder
	}

	content := strings.TrimSpace(match[1])
	if content == "" {
		return placeholder
	}
	return content
}
