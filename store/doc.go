// Package store is the application state store for the blou client: the
// single source of truth for the session user, community posts, chats,
// per-chat messages, and statuses.
//
// # Overview
//
// The store owns five entity collections and enforces their derived-data
// rules on every write. UI collaborators are pure consumers and
// dispatchers: they read snapshots and invoke operations, and the store
// recomputes dependent fields synchronously before the operation returns.
// Nothing inside the store is ever handed out by reference.
//
// # Derived-data rules
//
// Four families of derived state are maintained:
//
//   - Verification: User.IsVerified is recomputed from the follower and
//     total-like thresholds on Login and on every UpdateUser. It is never
//     independently settable.
//   - Author snapshots: posts and comments carry a denormalized copy of
//     their author's name, avatar, verification flag, and village, taken
//     at creation time. UpdateUser is the single invalidation path: it
//     rewrites the snapshot on every post and comment authored by the
//     session user, and nothing else.
//   - Engagement counters: Post.Likes always equals len(Post.Reactions)
//     and Post.Comments always equals len(Post.CommentsList). ReactToPost
//     and AddComment recompute them from the lists they just changed.
//   - Chat previews: SendMessage rewrites the owning chat's LastMessage,
//     LastMessageTime, and UnreadCount, then re-sorts the chat collection
//     descending by last activity.
//
// # Error policy
//
// Operations with an unmet precondition (no session user, unknown post or
// chat id) degrade to silent no-ops. The UI only invokes them from states
// where the precondition holds, so the worst failure mode is a missing
// update, never a crash.
//
// # Concurrency
//
// All access goes through a sync.RWMutex and every read returns a deep
// copy, so timer goroutines (startup load, simulated replies) can funnel
// their effects through the same operations the UI uses. Operations never
// block mid-mutation; each runs to completion under the lock.
//
// # Persistence
//
// The store itself is in-memory. The session user is mirrored to a
// durable slot through the injected SessionWriter on login, logout, and
// profile updates; everything else lives and dies with the process.
package store
