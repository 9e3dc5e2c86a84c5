package restaurant

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
)

// ParseTitle drops the leading rank token: "1. 교동짬뽕" -> "교동짬뽕".
func ParseTitle(text string) (string, error) {
	text = strings.TrimSpace(text)
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return "", fmt.Errorf("title %q has no rank token: %w", text, entity.ErrMalformedField)
	}
	name := strings.TrimSpace(text[i:])
	if name == "" {
		return "", fmt.Errorf("title %q: %w", text, entity.ErrMalformedField)
	}
	return name, nil
}

func ParseScore(text string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("score %q: %w", text, entity.ErrMalformedField)
	}
	return score, nil
}

// ParseReviewCount strips one leading and two trailing characters, then
// thousands separators: "(1,234)건" -> 1234. The stripped characters must not
// be digits and comma groups must have three digits, so truncated text fails
// instead of parsing as a smaller number.
func ParseReviewCount(text string) (int, error) {
	malformed := fmt.Errorf("review count %q: %w", text, entity.ErrMalformedField)
	runes := []rune(strings.TrimSpace(text))
	n := len(runes)
	if n < 4 || unicode.IsDigit(runes[0]) || unicode.IsDigit(runes[n-2]) || unicode.IsDigit(runes[n-1]) {
		return 0, malformed
	}
	groups := strings.Split(string(runes[1:n-2]), ",")
	for i, g := range groups {
		if !isDigits(g) {
			return 0, malformed
		}
		if len(groups) > 1 && (len(g) > 3 || (i > 0 && len(g) != 3)) {
			return 0, malformed
		}
	}
	count, err := strconv.Atoi(strings.Join(groups, ""))
	if err != nil {
		return 0, malformed
	}
	return count, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
