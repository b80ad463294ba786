package caption

import (
	"regexp"
	"strconv"
	"strings"
)

// maxTitleTokens bounds the fallback heuristic: release-style captions front-load
// the title, so the first few tokens are the best guess.
const maxTitleTokens = 5

var yearPattern = regexp.MustCompile(`^(.*?)\(\s*(\d{4})\s*\)`)

// Extract derives a search title and release year from a free-text video caption.
// An empty title means no title could be derived; a zero year means no year was found.
//
// Captions like "Spring Fever (2025) S01E08 720p" yield the text before the
// parenthesized year. Anything else is tokenized and truncated, which is a
// best-effort guess: a wrong title simply produces zero search results downstream.
func Extract(text string) (title string, year int) {
	if strings.TrimSpace(text) == "" {
		return "", 0
	}

	if m := yearPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			y, err := strconv.Atoi(m[2])
			if err == nil {
				return name, y
			}
		}
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return "", 0
	}
	if len(tokens) > maxTitleTokens {
		tokens = tokens[:maxTitleTokens]
	}
	return strings.Join(tokens, " "), 0
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '-', '|', '_', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
}
