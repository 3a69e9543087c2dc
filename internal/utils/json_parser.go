package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when model output contains no JSON object at all
var ErrNoJSON = errors.New("no JSON object in model output")

var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ParseAIJSON decodes a JSON object from model output into target. It accepts:
// - a bare JSON object
// - an object wrapped in a markdown code fence
// - an object surrounded by prose
// Malformed JSON is never repaired. When an object is found but fails to
// decode, the decode error is returned instead of ErrNoJSON.
func ParseAIJSON(input string, target any) error {
	input = strings.TrimSpace(strings.TrimPrefix(input, "\ufeff"))
	if input == "" {
		return fmt.Errorf("empty input: %w", ErrNoJSON)
	}

	candidates := []string{input}
	if fenced := extractFromMarkdown(input); fenced != "" {
		candidates = append(candidates, fenced)
	}
	if start := strings.Index(input, "{"); start >= 0 {
		if obj := extractBalancedBraces(input[start:], '{', '}'); obj != "" {
			candidates = append(candidates, obj)
		}
	}

	var lastErr error
	for _, c := range candidates {
		if !strings.HasPrefix(c, "{") {
			continue
		}
		if err := json.Unmarshal([]byte(c), target); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("decode model output: %w (input: %s)", lastErr, truncateString(input, 100))
	}
	return fmt.Errorf("%w (input: %s)", ErrNoJSON, truncateString(input, 100))
}

// extractFromMarkdown returns the body of the first ``` or ```json fence
func extractFromMarkdown(input string) string {
	if m := fencePattern.FindStringSubmatch(input); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractBalancedBraces returns the prefix of input up to the brace that
// closes the first opening one, ignoring braces inside string literals
func extractBalancedBraces(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false
	start := -1

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		if inString {
			switch ch {
			case '\\':
				escape = true
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			if depth == 0 {
				start = i
			}
			depth++
		case close:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}

	return ""
}

// truncateString truncates a string to maxLen bytes
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
