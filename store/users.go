package store

import "log"

// Verification thresholds. A user is verified exactly when both are met;
// the flag is recomputed on login and on every profile update and is never
// independently settable.
const (
	verifiedMinFollowers  = 1000
	verifiedMinTotalLikes = 10000
)

func verified(u User) bool {
	return u.Followers >= verifiedMinFollowers && u.TotalLikes >= verifiedMinTotalLikes
}

// UserUpdate is a partial profile update. Nil fields are left unchanged.
// IsVerified is absent on purpose: it is derived, never set.
type UserUpdate struct {
	FullName     *string
	PhoneNumber  *string
	Village      *string
	Avatar       *string
	Banner       *string
	About        *string
	DOB          *string
	IsOnline     *bool
	Followers    *int
	Following    *int
	FollowingIDs *[]string
	TotalLikes   *int
}

func (upd UserUpdate) apply(u *User) {
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.PhoneNumber != nil {
		u.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Village != nil {
		u.Village = *upd.Village
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Banner != nil {
		u.Banner = *upd.Banner
	}
	if upd.About != nil {
		u.About = *upd.About
	}
	if upd.DOB != nil {
		u.DOB = *upd.DOB
	}
	if upd.IsOnline != nil {
		u.IsOnline = *upd.IsOnline
	}
	if upd.Followers != nil {
		u.Followers = *upd.Followers
	}
	if upd.Following != nil {
		u.Following = *upd.Following
	}
	if upd.FollowingIDs != nil {
		u.FollowingIDs = cloneStrings(*upd.FollowingIDs)
	}
	if upd.TotalLikes != nil {
		u.TotalLikes = *upd.TotalLikes
	}
}

// Login sets the session user and persists it. Missing social counters
// default to zero and the verification flag is recomputed from scratch;
// re-login with the same id replaces rather than merges any prior record.
func (s *Store) Login(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.FollowingIDs = cloneStrings(u.FollowingIDs)
	u.IsVerified = verified(u)

	s.user = &u
	s.persistUserLocked()
}

// Logout clears the session user and the durable session slot. Posts and
// chats already created are untouched.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if s.sessions != nil {
		if err := s.sessions.ClearUser(); err != nil {
			log.Printf("clear session failed: %v", err)
		}
	}
}

// UpdateUser merges a partial update into the session user, recomputes
// verification, persists, and then rewrites the author snapshot on every
// post and comment authored by this user. No-op when logged out.
func (s *Store) UpdateUser(upd UserUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateUserLocked(upd)
}

func (s *Store) updateUserLocked(upd UserUpdate) {
	if s.user == nil {
		return
	}

	upd.apply(s.user)
	s.user.IsVerified = verified(*s.user)
	s.persistUserLocked()

	// Author snapshots on posts and comments are a deliberate cache; this
	// cascade is their only invalidation path.
	u := s.user
	for i := range s.posts {
		p := &s.posts[i]
		if p.UserID == u.ID {
			p.UserName = u.FullName
			p.UserAvatar = u.Avatar
			p.UserIsVerified = u.IsVerified
			p.Village = u.Village
		}
		for j := range p.CommentsList {
			c := &p.CommentsList[j]
			if c.UserID == u.ID {
				c.UserName = u.FullName
				c.UserAvatar = u.Avatar
			}
		}
	}
}

// IsFollowing reports whether the session user follows the target id.
// False when logged out.
func (s *Store) IsFollowing(targetID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return false
	}
	for _, id := range s.user.FollowingIDs {
		if id == targetID {
			return true
		}
	}
	return false
}

// ToggleFollow follows or unfollows the target id. The following counter
// moves by one and never drops below zero; a re-follow appends the id to
// the end of the list. No-op when logged out.
func (s *Store) ToggleFollow(targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}

	count := s.user.Following
	ids := make([]string, 0, len(s.user.FollowingIDs)+1)
	followed := false
	for _, id := range s.user.FollowingIDs {
		if id == targetID {
			followed = true
			continue
		}
		ids = append(ids, id)
	}
	if followed {
		count--
		if count < 0 {
			count = 0
		}
	} else {
		ids = append(ids, targetID)
		count++
	}

	s.updateUserLocked(UserUpdate{Following: &count, FollowingIDs: &ids})
}

func (s *Store) persistUserLocked() {
	if s.sessions == nil || s.user == nil {
		return
	}
	if err := s.sessions.SaveUser(*s.user); err != nil {
		log.Printf("save session failed: %v", err)
	}
}
