package parser

import (
	"regexp"
	"strings"
	"time"
)

// bracketPatterns match a [date, time] prefix. Ordered: the
// seconds-bearing pattern is tried before the seconds-less one so the
// seconds field is never dropped, ISO last. First match wins.
var bracketPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s*(\d{1,2}:\d{2}:\d{2}\s*(?:AM|PM)?)\]`),
	regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)\]`),
	regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2})\s*(\d{2}:\d{2}:\d{2})\]`),
}

type LineClassifier struct {
	patterns []*regexp.Regexp
}

func NewLineClassifier() *LineClassifier {
	return &LineClassifier{patterns: bracketPatterns}
}

// Classify decides whether a trimmed line starts a new message. On
// success it returns the resolved timestamp, the participant name and
// the message body. A pattern whose timestamp text fails to resolve
// falls through to the next pattern; a line without a participant colon
// cannot be attributed and is rejected.
func (c *LineClassifier) Classify(line string) (time.Time, string, string, bool) {
	for _, pattern := range c.patterns {
		groups := pattern.FindStringSubmatch(line)
		if groups == nil {
			continue
		}

		ts, ok := ResolveTimestamp(groups[1] + " " + groups[2])
		if !ok {
			continue
		}

		rest := strings.TrimSpace(line[len(groups[0]):])
		colon := strings.Index(rest, ":")
		if colon < 0 {
			continue
		}
		participant := strings.TrimSpace(rest[:colon])
		if participant == "" {
			continue
		}
		body := strings.TrimSpace(rest[colon+1:])

		return ts, participant, body, true
	}
	return time.Time{}, "", "", false
}
