package testutil

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"cad/internal/models"
	"cad/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockChatService implements services.ChatServiceInterface over a plain map.
type MockChatService struct {
	mu      sync.Mutex
	ChatMap map[uuid.UUID]*models.Chat
	order   []uuid.UUID
	uploads int64
}

func NewMockChatService() *MockChatService {
	return &MockChatService{ChatMap: make(map[uuid.UUID]*models.Chat)}
}

func (m *MockChatService) AddChat(transcript *models.Transcript, fileName string, fileSize int) *models.Chat {
	m.mu.Lock()
	defer m.mu.Unlock()
	chat := &models.Chat{
		ID:             uuid.New(),
		Title:          transcript.Title,
		FileName:       fileName,
		FileSize:       fileSize,
		UploadDate:     time.Now().UTC(),
		Participants:   transcript.Participants,
		Messages:       transcript.Messages,
		DateRangeStart: transcript.DateRangeStart,
		DateRangeEnd:   transcript.DateRangeEnd,
	}
	m.ChatMap[chat.ID] = chat
	m.order = append(m.order, chat.ID)
	m.uploads++
	return chat
}

func (m *MockChatService) GetChat(id uuid.UUID) (*models.Chat, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	chat, ok := m.ChatMap[id]
	return chat, ok
}

func (m *MockChatService) ListChats() []models.ChatInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	infos := make([]models.ChatInfo, 0, len(m.order))
	for _, id := range m.order {
		if chat, ok := m.ChatMap[id]; ok {
			infos = append(infos, chat.Info())
		}
	}
	return infos
}

func (m *MockChatService) DeleteChat(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ChatMap[id]; !ok {
		return false
	}
	delete(m.ChatMap, id)
	return true
}

func (m *MockChatService) GetChatCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ChatMap)
}

func (m *MockChatService) GetMessageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, chat := range m.ChatMap {
		total += len(chat.Messages)
	}
	return total
}

func (m *MockChatService) GetUploadsTotal() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploads
}

func (m *MockChatService) GetSnapshot() *models.Storage {
	m.mu.Lock()
	defer m.mu.Unlock()
	storage := &models.Storage{Chats: make(map[string]*models.Chat)}
	for _, id := range m.order {
		if chat, ok := m.ChatMap[id]; ok {
			storage.Chats[id.String()] = chat
			storage.Order = append(storage.Order, id.String())
		}
	}
	return storage
}

func (m *MockChatService) PutSnapshot(storage *models.Storage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatMap = make(map[uuid.UUID]*models.Chat)
	m.order = nil
	for _, key := range storage.Order {
		chat, ok := storage.Chats[key]
		if !ok {
			continue
		}
		m.ChatMap[chat.ID] = chat
		m.order = append(m.order, chat.ID)
	}
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu           sync.Mutex
	Requests     int
	CacheHits    int
	CacheMisses  int
	ParseObs     int
	PersistObs   int
	DurationObs  int
	LastEndpoint string
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
	m.LastEndpoint = endpoint
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DurationObs++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObserveParseDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ParseObs++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistObs++
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
