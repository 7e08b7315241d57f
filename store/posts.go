package store

import (
	"time"

	"github.com/google/uuid"
)

// AddPost prepends a fully-formed post to the feed, stamping the author's
// current verification flag. The caller supplies the id and timestamp;
// the feed stays in insertion order, newest first.
func (s *Store) AddPost(p Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addPostLocked(p)
}

func (s *Store) addPostLocked(p Post) {
	p.UserIsVerified = s.user != nil && s.user.IsVerified
	p.Reactions = cloneReactions(p.Reactions)
	p.CommentsList = cloneComments(p.CommentsList)
	s.posts = append([]Post{p}, s.posts...)
}

// AddComment appends a comment to a post and bumps its comment counter.
// Silent no-op when the post id is unknown.
func (s *Store) AddComment(postID string, c Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		s.posts[i].CommentsList = append(s.posts[i].CommentsList, c)
		s.posts[i].Comments = len(s.posts[i].CommentsList)
		return
	}
}

// Repost publishes a derivative post owned by the session user: content,
// media, and category come from the original, engagement starts at zero,
// and OriginalAuthor records the original author's display name. No-op
// when logged out.
func (s *Store) Repost(original Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}

	s.addPostLocked(Post{
		ID:             uuid.NewString(),
		UserID:         s.user.ID,
		UserName:       s.user.FullName,
		UserAvatar:     s.user.Avatar,
		Village:        s.user.Village,
		Category:       original.Category,
		Content:        original.Content,
		MediaURL:       original.MediaURL,
		MediaType:      original.MediaType,
		Timestamp:      time.Now(),
		IsRepost:       true,
		OriginalAuthor: original.UserName,
	})
}

// ReactToPost records the session user's emoji vote on a post. A user
// holds at most one reaction per post: repeating the same emoji removes
// it, a different emoji replaces it, and the like counter always tracks
// the reaction list length. No-op when logged out or the post id is
// unknown.
func (s *Store) ReactToPost(postID, emoji string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}

	for i := range s.posts {
		p := &s.posts[i]
		if p.ID != postID {
			continue
		}

		existing := -1
		for j, r := range p.Reactions {
			if r.UserID == s.user.ID {
				existing = j
				break
			}
		}

		switch {
		case existing >= 0 && p.Reactions[existing].Emoji == emoji:
			p.Reactions = append(p.Reactions[:existing], p.Reactions[existing+1:]...)
		case existing >= 0:
			p.Reactions[existing].Emoji = emoji
		default:
			p.Reactions = append(p.Reactions, Reaction{UserID: s.user.ID, Emoji: emoji})
		}
		p.Likes = len(p.Reactions)
		return
	}
}

// AddStatus prepends a status to the story collection.
func (s *Store) AddStatus(st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append([]Status{st}, s.statuses...)
}
