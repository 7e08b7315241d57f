package store

import (
	"testing"
	"time"
)

func seedChats(t0 time.Time) []Chat {
	return []Chat{
		{ID: "b", Name: "Sipho", LastMessage: "Sho", LastMessageTime: t0, UnreadCount: 2},
		{ID: "a", Name: "Village Group", LastMessageTime: t0.Add(-time.Hour)},
	}
}

func TestSendMessage_UpdatesPreviewAndReorders(t *testing.T) {
	t0 := time.Now()
	s := New(Options{Chats: seedChats(t0)})

	msg := Message{ID: "m1", SenderID: "u1", Content: "Howzit", Type: MessageText, Timestamp: t0.Add(time.Minute)}
	s.SendMessage("a", msg)

	if got := s.Messages("a"); len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("Messages(a) = %v, want [m1]", got)
	}

	chats := s.Chats()
	if chats[0].ID != "a" || chats[1].ID != "b" {
		t.Fatalf("chat order = [%s %s], want [a b]", chats[0].ID, chats[1].ID)
	}
	if chats[0].LastMessage != "Howzit" {
		t.Fatalf("LastMessage = %q, want Howzit", chats[0].LastMessage)
	}
	if !chats[0].LastMessageTime.Equal(msg.Timestamp) {
		t.Fatalf("LastMessageTime = %v, want %v", chats[0].LastMessageTime, msg.Timestamp)
	}
	if chats[0].UnreadCount != 0 {
		t.Fatalf("UnreadCount = %d, want reset to 0", chats[0].UnreadCount)
	}
}

func TestSendMessage_MediaPreviewLabel(t *testing.T) {
	tests := []struct {
		kind MessageType
		want string
	}{
		{MessageImage, "Sent a image"},
		{MessageVideo, "Sent a video"},
		{MessageVoice, "Sent a voice"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := New(Options{Chats: []Chat{{ID: "a"}}})
			s.SendMessage("a", Message{ID: "m1", Content: "blob://1", Type: tt.kind, Timestamp: time.Now()})

			if got := s.Chats()[0].LastMessage; got != tt.want {
				t.Fatalf("LastMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSendMessage_UnknownChatIsNoop(t *testing.T) {
	s := New(Options{Chats: []Chat{{ID: "a"}}})
	s.SendMessage("missing", Message{ID: "m1", Content: "hey", Type: MessageText})

	if got := s.Messages("missing"); len(got) != 0 {
		t.Fatalf("Messages(missing) has %d entries, want 0", len(got))
	}
}

func TestUpdateChatSettings_MergesPartialFields(t *testing.T) {
	s := New(Options{Chats: []Chat{{ID: "a", Wallpaper: "old.jpg", WallpaperOpacity: 0.5}}})

	wallpaper := "sunset.jpg"
	s.UpdateChatSettings("a", ChatSettings{Wallpaper: &wallpaper})

	c := s.Chats()[0]
	if c.Wallpaper != "sunset.jpg" {
		t.Fatalf("Wallpaper = %q, want sunset.jpg", c.Wallpaper)
	}
	if c.WallpaperOpacity != 0.5 {
		t.Fatalf("WallpaperOpacity = %v, want untouched 0.5", c.WallpaperOpacity)
	}

	opacity := 0.8
	s.UpdateChatSettings("a", ChatSettings{WallpaperOpacity: &opacity})
	if got := s.Chats()[0].WallpaperOpacity; got != 0.8 {
		t.Fatalf("WallpaperOpacity = %v, want 0.8", got)
	}

	// Unknown chat id changes nothing and does not panic.
	s.UpdateChatSettings("missing", ChatSettings{Wallpaper: &wallpaper})
}

func TestClearChat_EmptiesMessagesButKeepsChat(t *testing.T) {
	s := New(Options{
		Chats:    []Chat{{ID: "a", LastMessage: "Sho", UnreadCount: 2}},
		Messages: map[string][]Message{"a": {{ID: "m1"}, {ID: "m2"}}},
	})

	s.ClearChat("a")

	if got := s.Messages("a"); len(got) != 0 {
		t.Fatalf("Messages(a) has %d entries after clear, want 0", len(got))
	}
	chats := s.Chats()
	if len(chats) != 1 {
		t.Fatalf("Chats() has %d entries after clear, want 1", len(chats))
	}
	if chats[0].LastMessage != "Sho" || chats[0].UnreadCount != 2 {
		t.Fatal("clear touched the chat preview, want untouched")
	}
}

func TestDeleteChat_RemovesListingButOrphansMessages(t *testing.T) {
	s := New(Options{
		Chats:    []Chat{{ID: "a"}, {ID: "b"}},
		Messages: map[string][]Message{"a": {{ID: "m1"}}},
	})

	s.DeleteChat("a")

	chats := s.Chats()
	if len(chats) != 1 || chats[0].ID != "b" {
		t.Fatalf("Chats() = %v, want just b", chats)
	}
	// The message list is orphaned, still addressable by id.
	if got := s.Messages("a"); len(got) != 1 {
		t.Fatalf("Messages(a) has %d entries after delete, want 1", len(got))
	}
}
