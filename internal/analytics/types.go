package analytics

import (
	"time"

	"cad/internal/models"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type TimeBucket struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

type BasicStats struct {
	TotalMessages     int                        `json:"total_messages"`
	ParticipantCount  int                        `json:"participant_count"`
	DurationDays      int                        `json:"duration_days"`
	AvgMessagesPerDay float64                    `json:"avg_messages_per_day"`
	FirstMessage      *time.Time                 `json:"first_message,omitempty"`
	LastMessage       *time.Time                 `json:"last_message,omitempty"`
	MessageKinds      map[models.MessageKind]int `json:"message_types"`
}

type ParticipantStats struct {
	Name             string    `json:"name"`
	MessageCount     int       `json:"message_count"`
	AvgMessageLength float64   `json:"avg_message_length"`
	TotalCharacters  int       `json:"total_characters"`
	TotalWords       int       `json:"total_words"`
	EmojiCount       int       `json:"emoji_count"`
	LinkCount        int       `json:"link_count"`
	ActiveDays       int       `json:"active_days"`
	FirstMessage     time.Time `json:"first_message"`
	LastMessage      time.Time `json:"last_message"`
}

type WordFrequencyEntry struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

type Heatmap struct {
	Days     [7]string   `json:"days"`
	Hours    [24]string  `json:"hours"`
	Matrix   [7][24]int  `json:"matrix"`
	MaxCount int         `json:"max_count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type WeekdayCount struct {
	Day   int    `json:"day"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ActivityPatterns struct {
	Hourly   []HourCount    `json:"hourly_distribution"`
	Weekdays []WeekdayCount `json:"daily_distribution"`
	PeakHour string         `json:"peak_hour"`
	PeakDay  string         `json:"peak_day"`
}

type ResponseTimeStats struct {
	Name          string  `json:"name"`
	AvgSeconds    float64 `json:"avg_seconds"`
	MedianSeconds float64 `json:"median_seconds"`
	ResponseCount int     `json:"response_count"`
}

type StarterCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Pause struct {
	DurationHours float64   `json:"duration_hours"`
	Before        time.Time `json:"before"`
	After         time.Time `json:"after"`
	RestartedBy   string    `json:"restarted_by"`
}

type InteractionMetrics struct {
	ResponseTimes        []ResponseTimeStats `json:"response_times"`
	ConversationStarters []StarterCount      `json:"conversation_starters"`
	LongestPauses        []Pause             `json:"longest_pauses"`
}

type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

type ContentAnalysis struct {
	TotalMessages      int                  `json:"total_messages"`
	TotalCharacters    int                  `json:"total_chars"`
	TotalWords         int                  `json:"total_words"`
	MessagesWithEmoji  int                  `json:"total_emojis"`
	MessagesWithLinks  int                  `json:"total_links"`
	AvgCharsPerMessage float64              `json:"avg_chars_per_message"`
	AvgWordsPerMessage float64              `json:"avg_words_per_message"`
	WordCloud          []WordFrequencyEntry `json:"word_cloud"`
	EmojiAnalysis      []EmojiCount         `json:"emoji_analysis"`
	SharedDomains      []DomainCount        `json:"shared_domains"`
}

type SummaryHighlights struct {
	BusiestDay    string `json:"busiest_day"`
	MostTalkative string `json:"most_talkative"`
	EmojiLover    string `json:"emoji_lover"`
	LinkSharer    string `json:"link_sharer"`
}

type Summary struct {
	Statistics   BasicStats           `json:"statistics"`
	Highlights   SummaryHighlights    `json:"highlights"`
	PeakHour     string               `json:"peak_activity_time"`
	PeakDay      string               `json:"peak_activity_day"`
	Participants []ParticipantStats   `json:"participants"`
	TopWords     []WordFrequencyEntry `json:"top_words"`
}

// Analysis is the comprehensive result served by the analysis endpoint.
type Analysis struct {
	BasicStats     BasicStats                      `json:"basic_stats"`
	Timeline       []TimeBucket                    `json:"timeline"`
	Participants   []ParticipantStats              `json:"participants"`
	Content        ContentAnalysis                 `json:"content"`
	Patterns       ActivityPatterns                `json:"activity_patterns"`
	Heatmap        Heatmap                         `json:"heatmap"`
	Interactions   InteractionMetrics              `json:"interaction_metrics"`
	UserWordClouds map[string][]WordFrequencyEntry `json:"user_word_clouds"`
}
