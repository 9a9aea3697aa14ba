package models

import "time"

// Transcript is the result of parsing one exported chat file. Messages
// keep file line order; Participants keep first-encounter order. The
// date range covers every line whose timestamp resolved, which includes
// system lines that were excluded from Messages afterwards.
type Transcript struct {
	Title          string     `json:"title"`
	Messages       []Message  `json:"messages"`
	Participants   []string   `json:"participants"`
	DateRangeStart *time.Time `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time `json:"date_range_end,omitempty"`
}
