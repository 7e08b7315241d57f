package store

import (
	"sync"
)

// SessionWriter persists the session user between runs. The store calls it
// on every login, logout, and profile update; a nil writer disables
// persistence, which is what tests use.
type SessionWriter interface {
	SaveUser(u User) error
	ClearUser() error
}

// Options seed the store and wire its collaborators. The seed collections
// come from whatever mock or fixture data the caller owns; the store copies
// them on construction and never aliases caller slices.
type Options struct {
	Posts    []Post
	Chats    []Chat
	Messages map[string][]Message
	Statuses []Status
	Sessions SessionWriter
}

// Store is the single source of truth for the session user, posts, chats,
// per-chat messages, and statuses. Every write recomputes the derived
// fields that depend on it before returning; readers always receive
// defensive copies, so no entity is ever shared by reference outside the
// store.
type Store struct {
	mu       sync.RWMutex
	user     *User
	posts    []Post
	chats    []Chat
	messages map[string][]Message
	statuses []Status

	// UI selection state; empty string means "none selected".
	viewingProfileID string
	villageFilter    string

	sessions SessionWriter
}

// New constructs a store from seed data. The zero Options value yields an
// empty store with persistence disabled.
func New(opts Options) *Store {
	s := &Store{
		posts:    clonePosts(opts.Posts),
		chats:    cloneChats(opts.Chats),
		messages: make(map[string][]Message, len(opts.Messages)),
		statuses: cloneStatuses(opts.Statuses),
		sessions: opts.Sessions,
	}
	for chatID, msgs := range opts.Messages {
		s.messages[chatID] = cloneMessages(msgs)
	}
	return s
}

// User returns a copy of the session user, or nil when logged out.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// Posts returns a deep copy of the post collection, newest first.
func (s *Store) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

// Chats returns a copy of the chat collection, ordered by most recent
// activity.
func (s *Store) Chats() []Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneChats(s.chats)
}

// Messages returns a copy of the message list for a chat, oldest first.
// Unknown chat ids yield an empty list.
func (s *Store) Messages(chatID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMessages(s.messages[chatID])
}

// Statuses returns a copy of the status collection, newest first.
func (s *Store) Statuses() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStatuses(s.statuses)
}

// ViewProfile records which profile the UI is looking at. An empty id
// clears the selection.
func (s *Store) ViewProfile(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewingProfileID = userID
}

// ViewingProfileID reports the currently viewed profile id, or "" when
// none is selected.
func (s *Store) ViewingProfileID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewingProfileID
}

// SetVillageFilter sets the active village filter for discovery. An empty
// village clears the filter.
func (s *Store) SetVillageFilter(village string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.villageFilter = village
}

// VillageFilter reports the active village filter, or "" when unset.
func (s *Store) VillageFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.villageFilter
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	dup := *u
	dup.FollowingIDs = cloneStrings(u.FollowingIDs)
	return &dup
}

func clonePosts(posts []Post) []Post {
	if len(posts) == 0 {
		return nil
	}
	dup := make([]Post, len(posts))
	copy(dup, posts)
	for i := range dup {
		dup[i].Reactions = cloneReactions(dup[i].Reactions)
		dup[i].CommentsList = cloneComments(dup[i].CommentsList)
	}
	return dup
}

func cloneChats(chats []Chat) []Chat {
	if len(chats) == 0 {
		return nil
	}
	dup := make([]Chat, len(chats))
	copy(dup, chats)
	for i := range dup {
		dup[i].Participants = cloneStrings(dup[i].Participants)
	}
	return dup
}

func cloneMessages(msgs []Message) []Message {
	if len(msgs) == 0 {
		return nil
	}
	dup := make([]Message, len(msgs))
	copy(dup, msgs)
	return dup
}

func cloneStatuses(statuses []Status) []Status {
	if len(statuses) == 0 {
		return nil
	}
	dup := make([]Status, len(statuses))
	copy(dup, statuses)
	return dup
}

func cloneReactions(reactions []Reaction) []Reaction {
	if len(reactions) == 0 {
		return nil
	}
	dup := make([]Reaction, len(reactions))
	copy(dup, reactions)
	return dup
}

func cloneComments(comments []Comment) []Comment {
	if len(comments) == 0 {
		return nil
	}
	dup := make([]Comment, len(comments))
	copy(dup, comments)
	return dup
}

func cloneStrings(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	dup := make([]string, len(ids))
	copy(dup, ids)
	return dup
}
