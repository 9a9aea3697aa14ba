package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat is one stored upload. Messages and Participants are owned by the
// chat and treated as immutable after construction.
type Chat struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	FileName       string     `json:"file_name"`
	FileSize       int        `json:"file_size"`
	UploadDate     time.Time  `json:"upload_date"`
	Participants   []string   `json:"participants"`
	Messages       []Message  `json:"messages"`
	DateRangeStart *time.Time `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time `json:"date_range_end,omitempty"`
}

// ChatInfo is the listing shape, without the message payload.
type ChatInfo struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	UploadDate       time.Time  `json:"upload_date"`
	ParticipantCount int        `json:"participant_count"`
	MessageCount     int        `json:"message_count"`
	DateRangeStart   *time.Time `json:"date_range_start,omitempty"`
	DateRangeEnd     *time.Time `json:"date_range_end,omitempty"`
}

func (c *Chat) Info() ChatInfo {
	return ChatInfo{
		ID:               c.ID,
		Title:            c.Title,
		UploadDate:       c.UploadDate,
		ParticipantCount: len(c.Participants),
		MessageCount:     len(c.Messages),
		DateRangeStart:   c.DateRangeStart,
		DateRangeEnd:     c.DateRangeEnd,
	}
}
