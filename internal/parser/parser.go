package parser

import (
	"path/filepath"
	"strings"
	"time"

	"cad/internal/models"
	"cad/internal/structures"
)

type ContinuationPolicy string

const (
	// ContinuationDrop discards lines that match no timestamp pattern.
	ContinuationDrop ContinuationPolicy = "drop"
	// ContinuationAppend folds such lines into the previous message and
	// recomputes its counts and flags.
	ContinuationAppend ContinuationPolicy = "append"
)

// Parser converts raw export bytes into a Transcript. Parsing is
// best-effort: malformed lines are absorbed, never surfaced, and the
// transcript as a whole cannot fail for content reasons.
type Parser struct {
	lines        *LineClassifier
	classifier   *MessageClassifier
	continuation ContinuationPolicy
}

func NewParser(conf *structures.Config) *Parser {
	policy := ContinuationPolicy(conf.Parser.ContinuationPolicy)
	if policy != ContinuationAppend {
		policy = ContinuationDrop
	}
	return &Parser{
		lines:        NewLineClassifier(),
		classifier:   NewMessageClassifier(nil),
		continuation: policy,
	}
}

// Parse decodes content as UTF-8 with invalid sequences replaced, runs
// the line and message classifiers over every line and assembles the
// transcript. System messages are consulted for the date range, then
// excluded from the message sequence. Message order is file line order.
func (p *Parser) Parse(content []byte, filename string) *models.Transcript {
	text := strings.ToValidUTF8(string(content), "�")

	transcript := &models.Transcript{
		Title: titleFromFilename(filename),
	}
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		ts, participant, body, ok := p.lines.Classify(line)
		if !ok {
			if p.continuation == ContinuationAppend && len(transcript.Messages) > 0 {
				p.appendContinuation(transcript, line)
			}
			continue
		}

		expandRange(transcript, ts)

		msg := p.classifier.Build(ts, participant, body)
		if msg.Kind == models.KindSystem {
			continue
		}

		transcript.Messages = append(transcript.Messages, msg)
		if _, dup := seen[participant]; !dup {
			seen[participant] = struct{}{}
			transcript.Participants = append(transcript.Participants, participant)
		}
	}

	return transcript
}

// appendContinuation extends the previous message with a line that has
// no timestamp bracket, rebuilding its derived fields.
func (p *Parser) appendContinuation(transcript *models.Transcript, line string) {
	last := &transcript.Messages[len(transcript.Messages)-1]
	*last = p.classifier.Build(last.Timestamp, last.Participant, last.Content+"\n"+line)
}

func expandRange(transcript *models.Transcript, ts time.Time) {
	if transcript.DateRangeStart == nil || ts.Before(*transcript.DateRangeStart) {
		start := ts
		transcript.DateRangeStart = &start
	}
	if transcript.DateRangeEnd == nil || ts.After(*transcript.DateRangeEnd) {
		end := ts
		transcript.DateRangeEnd = &end
	}
}

func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(base, "_", " ")
}
