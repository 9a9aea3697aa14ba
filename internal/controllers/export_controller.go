package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"cad/internal/analytics"
	"cad/internal/models"
	"cad/internal/providers"
	"cad/internal/services"
)

type ExportController struct {
	logger  providers.Logger
	service services.ChatServiceInterface
	engine  *analytics.Engine
}

func NewExportController(logger providers.Logger, service services.ChatServiceInterface, engine *analytics.Engine) *ExportController {
	return &ExportController{
		logger:  logger,
		service: service,
		engine:  engine,
	}
}

func attachmentName(title, suffix string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, title)
	if name == "" {
		name = "chat"
	}
	return name + suffix
}

// ExportJSON streams the full chat with its comprehensive analysis.
func (ec *ExportController) ExportJSON(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ec.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	payload := map[string]any{
		"chat":     chat,
		"analysis": ec.engine.Comprehensive(chat.Messages),
	}
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+attachmentName(chat.Title, ".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// ExportCSV writes one of the tabular views selected by the type query
// parameter: messages, participants or timeline.
func (ec *ExportController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ec.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	exportType := r.URL.Query().Get("type")
	if exportType == "" {
		exportType = "messages"
	}
	if exportType != "messages" && exportType != "participants" && exportType != "timeline" {
		http.Error(w, "unknown export type: "+exportType, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+attachmentName(chat.Title, "_"+exportType+".csv"))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	switch exportType {
	case "messages":
		ec.writeMessagesCSV(writer, chat.Messages)
	case "participants":
		ec.writeParticipantsCSV(writer, chat.Messages)
	case "timeline":
		ec.writeTimelineCSV(writer, chat.Messages)
	}
}

func (ec *ExportController) writeMessagesCSV(writer *csv.Writer, messages []models.Message) {
	_ = writer.Write([]string{"timestamp", "participant", "kind", "content", "char_count", "word_count", "has_emoji", "has_link"})
	for i := range messages {
		m := &messages[i]
		_ = writer.Write([]string{
			m.Timestamp.Format(time.RFC3339),
			m.Participant,
			string(m.Kind),
			m.Content,
			strconv.Itoa(m.CharCount),
			strconv.Itoa(m.WordCount),
			strconv.FormatBool(m.HasEmoji),
			strconv.FormatBool(m.HasLink),
		})
	}
}

func (ec *ExportController) writeParticipantsCSV(writer *csv.Writer, messages []models.Message) {
	_ = writer.Write([]string{"name", "message_count", "avg_message_length", "total_characters", "total_words", "emoji_count", "link_count", "active_days"})
	for _, p := range ec.engine.ParticipantStatistics(messages) {
		_ = writer.Write([]string{
			p.Name,
			strconv.Itoa(p.MessageCount),
			strconv.FormatFloat(p.AvgMessageLength, 'f', 2, 64),
			strconv.Itoa(p.TotalCharacters),
			strconv.Itoa(p.TotalWords),
			strconv.Itoa(p.EmojiCount),
			strconv.Itoa(p.LinkCount),
			strconv.Itoa(p.ActiveDays),
		})
	}
}

func (ec *ExportController) writeTimelineCSV(writer *csv.Writer, messages []models.Message) {
	timeline, _ := ec.engine.Timeline(messages, analytics.GranularityDaily)
	_ = writer.Write([]string{"period", "count"})
	for _, bucket := range timeline {
		_ = writer.Write([]string{bucket.Period, strconv.Itoa(bucket.Count)})
	}
}

// ExportSummary serves the summary report as JSON or plain text.
func (ec *ExportController) ExportSummary(w http.ResponseWriter, r *http.Request) {
	chat, err := getChat(r, ec.service)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	summary := ec.engine.Summary(chat.Messages)

	format := r.URL.Query().Get("format")
	if format == "" || format == "json" {
		gson, err := json.Marshal(summary)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename="+attachmentName(chat.Title, "_summary.json"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(gson)
		return
	}
	if format != "txt" {
		http.Error(w, "unknown summary format: "+format, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+attachmentName(chat.Title, "_summary.txt"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(renderSummaryText(chat, summary)))
}

func renderSummaryText(chat *models.Chat, summary analytics.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Chat Summary: %s\n", chat.Title)
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	fmt.Fprintf(&b, "Messages:      %d\n", summary.Statistics.TotalMessages)
	fmt.Fprintf(&b, "Participants:  %d\n", summary.Statistics.ParticipantCount)
	fmt.Fprintf(&b, "Duration:      %d days\n", summary.Statistics.DurationDays)
	fmt.Fprintf(&b, "Avg per day:   %.1f\n", summary.Statistics.AvgMessagesPerDay)
	if summary.Statistics.FirstMessage != nil && summary.Statistics.LastMessage != nil {
		fmt.Fprintf(&b, "Date range:    %s to %s\n",
			summary.Statistics.FirstMessage.Format("2006-01-02"),
			summary.Statistics.LastMessage.Format("2006-01-02"))
	}

	b.WriteString("\nHighlights\n----------\n")
	fmt.Fprintf(&b, "Most talkative: %s\n", summary.Highlights.MostTalkative)
	fmt.Fprintf(&b, "Emoji lover:    %s\n", summary.Highlights.EmojiLover)
	fmt.Fprintf(&b, "Link sharer:    %s\n", summary.Highlights.LinkSharer)
	fmt.Fprintf(&b, "Busiest day:    %s\n", summary.Highlights.BusiestDay)
	fmt.Fprintf(&b, "Peak hour:      %s\n", summary.PeakHour)

	if len(summary.Participants) > 0 {
		b.WriteString("\nTop Participants\n----------------\n")
		for _, p := range summary.Participants {
			fmt.Fprintf(&b, "%-24s %d messages\n", p.Name, p.MessageCount)
		}
	}

	if len(summary.TopWords) > 0 {
		b.WriteString("\nTop Words\n---------\n")
		for _, word := range summary.TopWords {
			fmt.Fprintf(&b, "%-16s %d\n", word.Word, word.Count)
		}
	}

	return b.String()
}
