package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"cad/internal/models"
)

// DefaultSystemPhrases are the export app's own event notices. Matched
// case-insensitively as substrings, in order.
var DefaultSystemPhrases = []string{
	"messages and calls are end-to-end encrypted",
	"created group",
	"added",
	"removed",
	"left",
	"changed the group description",
	"changed this group's icon",
}

const (
	mediaMarker    = "<media omitted>"
	mediaMarkerAlt = "image omitted"
	deletedMarker  = "this message was deleted"
)

var (
	// emojiPattern covers the pictographic blocks: emoticons, symbols
	// and pictographs, transport, flags, dingbats and enclosed
	// characters.
	emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]`)

	// emojiRunPattern tallies consecutive emoji code points as one unit.
	emojiRunPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]+`)

	urlPattern = regexp.MustCompile(`https?://(?:[-\w.])+\.[a-zA-Z]{2,}(?:/[^?\s]*)?(?:\?[^#\s]*)?(?:#[^\s]*)?`)
)

// HasEmoji reports whether text contains a pictographic code point.
func HasEmoji(text string) bool {
	return emojiPattern.MatchString(text)
}

// HasLink reports whether text contains an http(s) URL with an authority.
func HasLink(text string) bool {
	return urlPattern.MatchString(text)
}

// EmojiRuns returns each consecutive run of emoji code points in text.
func EmojiRuns(text string) []string {
	return emojiRunPattern.FindAllString(text, -1)
}

// Links returns every URL found in text.
func Links(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// StripEmojiAndLinks removes emoji runs and URLs, for word tokenization.
func StripEmojiAndLinks(text string) string {
	text = emojiRunPattern.ReplaceAllString(text, "")
	return urlPattern.ReplaceAllString(text, "")
}

// MessageClassifier assigns a kind to a message body and derives its
// size metrics and content flags. The phrase set is injected at
// construction so tests can run with a custom vocabulary.
type MessageClassifier struct {
	systemPhrases []string
}

func NewMessageClassifier(systemPhrases []string) *MessageClassifier {
	if systemPhrases == nil {
		systemPhrases = DefaultSystemPhrases
	}
	return &MessageClassifier{systemPhrases: systemPhrases}
}

// Kind checks system phrases first, then the media marker, then the
// deletion marker; everything else is text. Kinds are mutually
// exclusive and total.
func (c *MessageClassifier) Kind(body string) models.MessageKind {
	lower := strings.ToLower(body)
	for _, phrase := range c.systemPhrases {
		if strings.Contains(lower, phrase) {
			return models.KindSystem
		}
	}
	if strings.Contains(lower, mediaMarker) || strings.Contains(lower, mediaMarkerAlt) {
		return models.KindMedia
	}
	if strings.Contains(lower, deletedMarker) {
		return models.KindDeleted
	}
	return models.KindText
}

// Build assembles a Message record. The flags are independent of kind:
// a text message can carry both an emoji and a link.
func (c *MessageClassifier) Build(ts time.Time, participant, body string) models.Message {
	return models.Message{
		Timestamp:   ts,
		Participant: participant,
		Content:     body,
		Kind:        c.Kind(body),
		CharCount:   utf8.RuneCountInString(body),
		WordCount:   len(strings.Fields(body)),
		HasEmoji:    HasEmoji(body),
		HasLink:     HasLink(body),
	}
}
