package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blouapp/blou/sched"
	"github.com/blouapp/blou/session"
	"github.com/blouapp/blou/store"
)

const (
	defaultLoadDelay  = 1500 * time.Millisecond
	defaultReplyDelay = 2 * time.Second

	replySenderID = "other"
	replyText     = "That sounds great! I'll check it out."
)

// Options configure the blou application core. Zero-value fields fall
// back to defaults; the seed collections come from the caller's mock
// data.
type Options struct {
	SessionPath string // empty uses ~/.config/blou/session.toml
	PrefsPath   string // empty uses ~/.config/blou/prefs.toml

	LoadDelay  time.Duration // simulated startup delay; zero uses 1.5s
	ReplyDelay time.Duration // simulated chat reply delay; zero uses 2s

	Posts    []store.Post
	Chats    []store.Chat
	Messages map[string][]store.Message
	Statuses []store.Status
}

// App wires the store, the durable session slots, and the scheduler into
// one handle for the UI shell to consume.
type App struct {
	store      *store.Store
	tasks      *sched.Scheduler
	slots      session.Slots
	replyDelay time.Duration

	mu       sync.Mutex
	loading  bool
	darkMode bool
	ready    chan struct{}
}

// New constructs the application core and schedules the simulated startup
// load. Until that fires, Loading reports true and the UI shows its
// splash state; once it fires, any saved session user has been restored
// and the theme preference applied.
func New(opts Options) *App {
	slots := session.Slots{UserPath: opts.SessionPath, PrefsPath: opts.PrefsPath}

	loadDelay := opts.LoadDelay
	if loadDelay <= 0 {
		loadDelay = defaultLoadDelay
	}
	replyDelay := opts.ReplyDelay
	if replyDelay <= 0 {
		replyDelay = defaultReplyDelay
	}

	a := &App{
		tasks:      sched.New(),
		slots:      slots,
		replyDelay: replyDelay,
		loading:    true,
		ready:      make(chan struct{}),
	}
	a.store = store.New(store.Options{
		Posts:    opts.Posts,
		Chats:    opts.Chats,
		Messages: opts.Messages,
		Statuses: opts.Statuses,
		Sessions: slots,
	})

	a.tasks.After(loadDelay, a.finishLoading)
	return a
}

// Store returns the application state store.
func (a *App) Store() *store.Store {
	return a.store
}

// Loading reports whether the simulated startup load is still running.
func (a *App) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Ready is closed once the startup load has finished. It never closes if
// the app is closed first.
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// DarkMode reports the active theme.
func (a *App) DarkMode() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.darkMode
}

// ToggleDarkMode flips the theme and persists the preference.
func (a *App) ToggleDarkMode() {
	a.mu.Lock()
	a.darkMode = !a.darkMode
	dark := a.darkMode
	a.mu.Unlock()

	theme := session.ThemeLight
	if dark {
		theme = session.ThemeDark
	}
	if err := a.slots.SavePrefs(session.Prefs{Theme: theme}); err != nil {
		log.Printf("save theme failed: %v", err)
	}
}

// SimulateReply schedules the canned chat reply that follows a sent
// message. The returned handle belongs to the chat view: cancelling it
// when the view closes keeps a stale reply from landing in the store.
func (a *App) SimulateReply(chatID string) *sched.Task {
	return a.tasks.After(a.replyDelay, func() {
		a.store.SendMessage(chatID, store.Message{
			ID:        uuid.NewString(),
			SenderID:  replySenderID,
			Content:   replyText,
			Type:      store.MessageText,
			Timestamp: time.Now(),
		})
	})
}

// Close cancels all outstanding timers. Effects that have not fired yet
// are discarded.
func (a *App) Close() {
	a.tasks.Stop()
}

func (a *App) finishLoading() {
	if u := a.slots.LoadUser(); u != nil {
		// Restoring through Login re-runs the verification check, so a
		// stale persisted flag cannot survive a restart.
		a.store.Login(*u)
	}
	prefs := a.slots.LoadPrefs()

	a.mu.Lock()
	a.darkMode = prefs.Theme == session.ThemeDark
	a.loading = false
	close(a.ready)
	a.mu.Unlock()
}
