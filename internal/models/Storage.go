package models

// Storage is the on-disk snapshot format of the chat store.
type Storage struct {
	Chats map[string]*Chat `json:"chats"`
	Order []string         `json:"order"`
}
