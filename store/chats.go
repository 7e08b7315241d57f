package store

import "sort"

// ChatSettings is a partial update of a chat's display settings. Nil
// fields are left unchanged.
type ChatSettings struct {
	Wallpaper        *string
	WallpaperOpacity *float64
}

// SendMessage appends a message to a chat and refreshes the chat's
// preview: LastMessage becomes the text content (or a "Sent a <kind>"
// label for media), LastMessageTime takes the message timestamp, and the
// unread counter resets. The chat collection is then re-sorted so the
// most recently active chat lists first. No-op when the chat id is
// unknown.
func (s *Store) SendMessage(chatID string, m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.chatIndexLocked(chatID)
	if idx < 0 {
		return
	}

	s.messages[chatID] = append(s.messages[chatID], m)

	chat := &s.chats[idx]
	if m.Type == MessageText {
		chat.LastMessage = m.Content
	} else {
		chat.LastMessage = "Sent a " + string(m.Type)
	}
	chat.LastMessageTime = m.Timestamp
	chat.UnreadCount = 0

	sort.SliceStable(s.chats, func(i, j int) bool {
		return s.chats[i].LastMessageTime.After(s.chats[j].LastMessageTime)
	})
}

// UpdateChatSettings merges display settings into a chat. No-op when the
// chat id is unknown.
func (s *Store) UpdateChatSettings(chatID string, settings ChatSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.chatIndexLocked(chatID)
	if idx < 0 {
		return
	}
	if settings.Wallpaper != nil {
		s.chats[idx].Wallpaper = *settings.Wallpaper
	}
	if settings.WallpaperOpacity != nil {
		s.chats[idx].WallpaperOpacity = *settings.WallpaperOpacity
	}
}

// ClearChat empties a chat's message list. The chat record itself, its
// preview included, is untouched.
func (s *Store) ClearChat(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[chatID] = []Message{}
}

// DeleteChat removes a chat from the listing. Its message list is left
// behind, still addressable by id but no longer surfaced anywhere.
func (s *Store) DeleteChat(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.chatIndexLocked(chatID)
	if idx < 0 {
		return
	}
	s.chats = append(s.chats[:idx], s.chats[idx+1:]...)
}

func (s *Store) chatIndexLocked(chatID string) int {
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			return i
		}
	}
	return -1
}
