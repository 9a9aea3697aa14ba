package services

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"cad/internal/models"
)

type ChatServiceInterface interface {
	AddChat(transcript *models.Transcript, fileName string, fileSize int) *models.Chat
	GetChat(id uuid.UUID) (*models.Chat, bool)
	ListChats() []models.ChatInfo
	DeleteChat(id uuid.UUID) bool
	GetChatCount() int
	GetMessageCount() int
	GetUploadsTotal() int64
	GetSnapshot() *models.Storage
	PutSnapshot(storage *models.Storage)
}

// ChatService is the registry of uploaded chats. Chats are immutable
// once added; the store handles all locking.
type ChatService struct {
	store        *models.ChatStore
	uploadsTotal atomic.Int64
}

func NewChatService() ChatServiceInterface {
	return &ChatService{store: models.NewChatStore()}
}

func (cs *ChatService) AddChat(transcript *models.Transcript, fileName string, fileSize int) *models.Chat {
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
	cs.store.Add(chat)
	cs.uploadsTotal.Inc()
	return chat
}

func (cs *ChatService) GetChat(id uuid.UUID) (*models.Chat, bool) {
	return cs.store.Get(id)
}

func (cs *ChatService) ListChats() []models.ChatInfo {
	chats := cs.store.List()
	infos := make([]models.ChatInfo, 0, len(chats))
	for _, chat := range chats {
		infos = append(infos, chat.Info())
	}
	return infos
}

func (cs *ChatService) DeleteChat(id uuid.UUID) bool {
	return cs.store.Delete(id)
}

func (cs *ChatService) GetChatCount() int {
	return cs.store.Len()
}

func (cs *ChatService) GetMessageCount() int {
	return cs.store.MessageCount()
}

func (cs *ChatService) GetUploadsTotal() int64 {
	return cs.uploadsTotal.Load()
}

func (cs *ChatService) GetSnapshot() *models.Storage {
	return cs.store.GetData()
}

func (cs *ChatService) PutSnapshot(storage *models.Storage) {
	cs.store.PutData(storage)
}
