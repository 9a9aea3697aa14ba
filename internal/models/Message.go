package models

import "time"

type MessageKind string

const (
	KindText    MessageKind = "text"
	KindMedia   MessageKind = "media"
	KindSystem  MessageKind = "system"
	KindDeleted MessageKind = "deleted"
)

// Message is one parsed transcript line. Immutable once built; char and
// word counts and the emoji/link flags are derived from Content at
// construction time and never recomputed.
type Message struct {
	Timestamp   time.Time   `json:"timestamp"`
	Participant string      `json:"participant"`
	Content     string      `json:"content"`
	Kind        MessageKind `json:"kind"`
	CharCount   int         `json:"char_count"`
	WordCount   int         `json:"word_count"`
	HasEmoji    bool        `json:"has_emoji"`
	HasLink     bool        `json:"has_link"`
}
