package store

import "time"

// PostCategory groups posts on the community feed.
type PostCategory string

const (
	CategoryGeneral  PostCategory = "General"
	CategoryFunerals PostCategory = "Funerals"
	CategoryEvents   PostCategory = "Events"
	CategorySports   PostCategory = "Sports"
)

// MediaType tags the kind of media a post or status references.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MessageType tags the payload kind of a chat message.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageVideo MessageType = "video"
	MessageVoice MessageType = "voice"
)

// ChatType distinguishes one-on-one threads from group threads.
type ChatType string

const (
	ChatPrivate ChatType = "private"
	ChatGroup   ChatType = "group"
)

// User is the session identity. It is the only entity persisted across
// runs, so it carries TOML tags for the session slot.
type User struct {
	ID           string    `toml:"id"`
	FullName     string    `toml:"full_name"`
	PhoneNumber  string    `toml:"phone_number"`
	Village      string    `toml:"village"`
	Avatar       string    `toml:"avatar"`
	Banner       string    `toml:"banner"`
	About        string    `toml:"about"`
	DOB          string    `toml:"dob"`
	IsOnline     bool      `toml:"is_online"`
	Followers    int       `toml:"followers"`
	Following    int       `toml:"following"`
	FollowingIDs []string  `toml:"following_ids"`
	TotalLikes   int      `toml:"total_likes"`
	IsVerified   bool     `toml:"is_verified"`
}

// Comment is an append-only child of a post. The author name and avatar
// are snapshots taken at creation time and refreshed only by the
// UpdateUser cascade.
type Comment struct {
	ID         string
	UserID     string
	UserName   string
	UserAvatar string
	Content    string
	Timestamp  time.Time
}

// Reaction is a single emoji vote by one user on one post. A user holds
// at most one reaction per post.
type Reaction struct {
	UserID string
	Emoji  string
}

// Post is authored feed content. UserName, UserAvatar, UserIsVerified and
// Village are denormalized from the author at creation time; the
// UpdateUser cascade is the only invalidation path. Likes always equals
// len(Reactions) and Comments always equals len(CommentsList).
type Post struct {
	ID             string
	UserID         string
	UserName       string
	UserAvatar     string
	UserIsVerified bool
	Village        string
	Category       PostCategory
	Content        string
	MediaURL       string
	MediaType      MediaType
	Timestamp      time.Time
	Likes          int
	Reactions      []Reaction
	Comments       int
	CommentsList   []Comment
	IsRepost       bool
	OriginalAuthor string
}

// Message belongs to exactly one chat. Content holds text, or an opaque
// media locator when Type is not MessageText. Duration is free-form and
// only set for voice notes.
type Message struct {
	ID        string
	SenderID  string
	Content   string
	Type      MessageType
	Timestamp time.Time
	Duration  string
}

// Chat is a conversation thread. LastMessage, LastMessageTime and
// UnreadCount are a denormalized preview of the newest message,
// maintained by SendMessage.
type Chat struct {
	ID               string
	Name             string
	Avatar           string
	Type             ChatType
	LastMessage      string
	LastMessageTime  time.Time
	UnreadCount      int
	Participants     []string
	Wallpaper        string
	WallpaperOpacity float64
}

// Status is an ephemeral single-media story. No expiry is modeled.
type Status struct {
	ID         string
	UserID     string
	UserName   string
	UserAvatar string
	MediaURL   string
	Timestamp  time.Time
}
