package evaluation

import "strings"

// CandidateExtractor locates the JSON object candidate inside a model reply.
type CandidateExtractor interface {
	ExtractCandidate(text string) (string, bool)
}

// GreedyExtractor captures everything from the first '{' to the last '}'.
// Prose around a single object is tolerated; a reply holding several objects
// yields a span that will not parse.
type GreedyExtractor struct{}

// ExtractCandidate implements CandidateExtractor.
func (GreedyExtractor) ExtractCandidate(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

// BalancedExtractor returns the first brace-balanced object, skipping braces
// inside JSON strings.
type BalancedExtractor struct{}

// ExtractCandidate implements CandidateExtractor.
func (BalancedExtractor) ExtractCandidate(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' && start >= 0 {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
