package controllers

import (
	"archive/zip"
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cad/internal/analytics"
	"cad/internal/models"
	"cad/internal/parser"
	"cad/internal/structures"
	"cad/internal/testutil"
)

const exportFixture = `[1/15/2024, 2:30:45 PM] Alice: Hello everyone
[1/15/2024, 2:31:00 PM] Bob: Hey 😀 check https://example.com/page
[1/15/2024, 2:32:00 PM] Alice: pizza tonight?
[1/16/2024, 9:05:00 AM] Bob: sounds good
`

func testConfig() *structures.Config {
	conf := &structures.Config{}
	conf.Upload.MaxFileSize = 1 << 20
	conf.Parser.ContinuationPolicy = "drop"
	return conf
}

func newTestController(svc *testutil.MockChatService, cache *testutil.MockCache, metrics *testutil.MockMetrics) *ApiController {
	conf := testConfig()
	return NewApiController(&testutil.MockLogger{}, svc, parser.NewParser(conf), analytics.NewEngine(conf), cache, metrics, conf)
}

func uploadedChat(t *testing.T, svc *testutil.MockChatService) *models.Chat {
	t.Helper()
	conf := testConfig()
	transcript := parser.NewParser(conf).Parse([]byte(exportFixture), "holiday_chat.txt")
	return svc.AddChat(transcript, "holiday_chat.txt", len(exportFixture))
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func zipArchive(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// --- upload ---

func TestUpload_TxtFile(t *testing.T) {
	svc := testutil.NewMockChatService()
	metrics := &testutil.MockMetrics{}
	ac := newTestController(svc, testutil.NewMockCache(), metrics)

	body, contentType := multipartBody(t, "holiday_chat.txt", []byte(exportFixture))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	ac.Upload(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, svc.GetChatCount())
	assert.Equal(t, 1, metrics.ParseObs)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["chat_id"])
	stats := resp["stats"].(map[string]any)
	assert.Equal(t, float64(4), stats["messages"])
	assert.Equal(t, float64(2), stats["participants"])
}

func TestUpload_ZipFile(t *testing.T) {
	svc := testutil.NewMockChatService()
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	archive := zipArchive(t, map[string][]byte{"holiday_chat.txt": []byte(exportFixture)})
	body, contentType := multipartBody(t, "export.zip", archive)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	ac.Upload(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, 1, svc.GetChatCount())
	infos := svc.ListChats()
	assert.Equal(t, "holiday chat", infos[0].Title)
}

func TestUpload_ZipWithoutTxt(t *testing.T) {
	ac := newTestController(testutil.NewMockChatService(), testutil.NewMockCache(), &testutil.MockMetrics{})

	archive := zipArchive(t, map[string][]byte{"readme.md": []byte("nope")})
	body, contentType := multipartBody(t, "export.zip", archive)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	ac.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpload_RejectedExtension(t *testing.T) {
	svc := testutil.NewMockChatService()
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	body, contentType := multipartBody(t, "chat.pdf", []byte("binary"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	ac.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, svc.GetChatCount())
}

func TestUpload_MissingFileField(t *testing.T) {
	ac := newTestController(testutil.NewMockChatService(), testutil.NewMockCache(), &testutil.MockMetrics{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("other", "value"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rr := httptest.NewRecorder()

	ac.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpload_NotMultipart(t *testing.T) {
	ac := newTestController(testutil.NewMockChatService(), testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte("raw body")))
	rr := httptest.NewRecorder()

	ac.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- chat registry ---

func TestListChats(t *testing.T) {
	svc := testutil.NewMockChatService()
	uploadedChat(t, svc)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/chats", nil)
	rr := httptest.NewRecorder()
	ac.ListChats(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var infos []models.ChatInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "holiday chat", infos[0].Title)
	assert.Equal(t, 4, infos[0].MessageCount)
}

func TestDeleteChat(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodDelete, "/chat?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.DeleteChat(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, svc.GetChatCount())
}

func TestDeleteChat_BadID(t *testing.T) {
	ac := newTestController(testutil.NewMockChatService(), testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodDelete, "/chat?id=nope", nil)
	rr := httptest.NewRecorder()
	ac.DeleteChat(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteChat_Missing(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	svc.DeleteChat(chat.ID)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodDelete, "/chat?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.DeleteChat(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// --- analysis endpoints ---

func TestGetStats_ComputesAndCaches(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	cache := testutil.NewMockCache()
	ac := newTestController(svc, cache, &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/stats?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.GetStats(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var stats analytics.BasicStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.TotalMessages)
	assert.Equal(t, 2, stats.ParticipantCount)

	_, cached := cache.Get("stats:" + chat.ID.String())
	assert.True(t, cached)
}

func TestGetStats_ServedFromCache(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	cache := testutil.NewMockCache()
	cache.Set("stats:"+chat.ID.String(), []byte(`{"canned":true}`))
	ac := newTestController(svc, cache, &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/stats?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.GetStats(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"canned":true}`, rr.Body.String())
}

func TestGetStats_UnknownChat(t *testing.T) {
	ac := newTestController(testutil.NewMockChatService(), testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/stats?id=6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	rr := httptest.NewRecorder()
	ac.GetStats(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetTimeline_InvalidGranularity(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/timeline?granularity=hourly&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.GetTimeline(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetTimeline_DefaultsToDaily(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/timeline?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.GetTimeline(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var buckets []analytics.TimeBucket
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &buckets))
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-01-15", buckets[0].Period)
}

func TestGetWordCloud_LimitParameter(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/wordcloud?limit=1&id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.GetWordCloud(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var entries []analytics.WordFrequencyEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestGetAnalysis_FullPayload(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/analysis?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.GetAnalysis(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var analysis analytics.Analysis
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &analysis))
	assert.Equal(t, 4, analysis.BasicStats.TotalMessages)
	assert.NotEmpty(t, analysis.Timeline)
	assert.Len(t, analysis.Participants, 2)
}

func TestGetSummary(t *testing.T) {
	svc := testutil.NewMockChatService()
	chat := uploadedChat(t, svc)
	ac := newTestController(svc, testutil.NewMockCache(), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/summary?id="+chat.ID.String(), nil)
	rr := httptest.NewRecorder()
	ac.GetSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var summary analytics.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, "Alice", summary.Highlights.MostTalkative)
}
