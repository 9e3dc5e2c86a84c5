package faq

import (
	"strings"

	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
)

// NextControl finds the pagination control flagged with currentClass and
// returns the control right after it, or nil when the current page is last or
// no control is flagged.
func NextControl(controls []chrome.Element, currentClass string) (chrome.Element, error) {
	for i, control := range controls {
		class, ok, err := control.Attribute("class")
		if err != nil {
			return nil, err
		}
		if !ok || strings.TrimSpace(class) != currentClass {
			continue
		}
		if i+1 < len(controls) {
			return controls[i+1], nil
		}
		return nil, nil
	}
	return nil, nil
}

// NormalizeAnswer removes the decorative marker wherever it appears and the
// fixed prefix in front of the revealed answer text.
func NormalizeAnswer(text, prefix, marker string) string {
	if marker != "" {
		text = strings.ReplaceAll(text, marker, "")
	}
	text = strings.TrimSpace(text)
	if prefix != "" {
		text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
	}
	return text
}
