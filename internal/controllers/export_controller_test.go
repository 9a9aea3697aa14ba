package controllers

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cad/internal/analytics"
	"cad/internal/testutil"
)

func newTestExportController(svc *testutil.MockChatService) *ExportController {
	return NewExportController(&testutil.MockLogger{}, svc, analytics.NewEngine(testConfig()))
}

func TestExportJSON(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/json?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportJSON(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rr.Header().Get("Content-Disposition"), ".json")

	var payload struct {
		Chat     map[string]any     `json:"chat"`
		Analysis analytics.Analysis `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "holiday chat", payload.Chat["title"])
	assert.Equal(t, 4, payload.Analysis.BasicStats.TotalMessages)
}

func TestExportJSON_UnknownChat(t *testing.T) {
	ec := newTestExportController(testutil.NewMockChatService())

	req := httptest.NewRequest(http.MethodGet, "/export/json?id=6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	rr := httptest.NewRecorder()
	ec.ExportJSON(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExportCSV_Messages(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?type=messages&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportCSV(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))

	records, err := csv.NewReader(rr.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 4 messages
	assert.Equal(t, "timestamp", records[0][0])
	assert.Equal(t, "Alice", records[1][1])
}

func TestExportCSV_DefaultsToMessages(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportCSV(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "_messages.csv")
}

func TestExportCSV_Participants(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?type=participants&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportCSV(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	records, err := csv.NewReader(rr.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 participants
	assert.Equal(t, "name", records[0][0])
}

func TestExportCSV_Timeline(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?type=timeline&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportCSV(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	records, err := csv.NewReader(rr.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 days
	assert.Equal(t, []string{"period", "count"}, records[0])
	assert.Equal(t, "2024-01-15", records[1][0])
}

func TestExportCSV_UnknownType(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?type=emoji&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportCSV(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExportSummary_JSON(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/summary?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var summary analytics.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 4, summary.Statistics.TotalMessages)
}

func TestExportSummary_Txt(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/summary?format=txt&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))

	text := rr.Body.String()
	assert.Contains(t, text, "Chat Summary: holiday chat")
	assert.Contains(t, text, "Most talkative: Alice")
	assert.Contains(t, text, "Messages:      4")
}

func TestExportSummary_UnknownFormat(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ec := newTestExportController(svc)

	req := httptest.NewRequest(http.MethodGet, "/export/summary?format=xml&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ec.ExportSummary(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAttachmentName_Sanitizes(t *testing.T) {
	assert.Equal(t, "holiday_chat.json", attachmentName("holiday chat", ".json"))
	assert.Equal(t, "chat.csv", attachmentName("", ".csv"))
	assert.Equal(t, "a_b_c.txt", attachmentName("a/b:c", ".txt"))
}
