package models

import (
	"sync"

	"github.com/google/uuid"
)

// ChatStore holds uploaded chats keyed by id, preserving upload order
// for listings. Stored chats are immutable, so getters hand out the
// stored pointers instead of deep copies.
type ChatStore struct {
	mu    sync.RWMutex
	chats map[uuid.UUID]*Chat
	order []uuid.UUID
}

func NewChatStore() *ChatStore {
	return &ChatStore{
		chats: make(map[uuid.UUID]*Chat),
	}
}

func (s *ChatStore) Add(chat *Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[chat.ID]; !ok {
		s.order = append(s.order, chat.ID)
	}
	s.chats[chat.ID] = chat
}

func (s *ChatStore) Get(id uuid.UUID) (*Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chat, ok := s.chats[id]
	return chat, ok
}

func (s *ChatStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[id]; !ok {
		return false
	}
	delete(s.chats, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *ChatStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chats)
}

// List returns chats in upload order.
func (s *ChatStore) List() []*Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Chat, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.chats[id])
	}
	return result
}

// MessageCount sums stored message counts across all chats.
func (s *ChatStore) MessageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, chat := range s.chats {
		total += len(chat.Messages)
	}
	return total
}

func (s *ChatStore) GetData() *Storage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storage := &Storage{
		Chats: make(map[string]*Chat, len(s.chats)),
		Order: make([]string, 0, len(s.order)),
	}
	for id, chat := range s.chats {
		storage.Chats[id.String()] = chat
	}
	for _, id := range s.order {
		storage.Order = append(storage.Order, id.String())
	}
	return storage
}

func (s *ChatStore) PutData(storage *Storage) {
	if storage == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = make(map[uuid.UUID]*Chat, len(storage.Chats))
	s.order = s.order[:0]

	for _, raw := range storage.Order {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		chat, ok := storage.Chats[raw]
		if !ok || chat == nil {
			continue
		}
		s.chats[id] = chat
		s.order = append(s.order, id)
	}
	// Chats missing from the order list (older snapshots) still load.
	for raw, chat := range storage.Chats {
		id, err := uuid.Parse(raw)
		if err != nil || chat == nil {
			continue
		}
		if _, ok := s.chats[id]; !ok {
			s.chats[id] = chat
			s.order = append(s.order, id)
		}
	}
}
