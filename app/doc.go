// Package app is the composition root for the blou application core.
//
// # Overview
//
// New wires the pieces the UI shell consumes: the application state store,
// the durable session slots, and the scheduler that runs the simulated
// delays. The UI never constructs these itself; it receives the App
// handle and goes through it, which keeps the store injectable in tests
// instead of a hidden process-wide singleton.
//
// # Startup
//
//	a := app.New(app.Options{Chats: seedChats, Posts: seedPosts})
//	<-a.Ready()            // splash state ends here
//	if u := a.Store().User(); u != nil {
//		// saved session restored, skip the auth screen
//	}
//
// The startup load is deliberately delayed (1.5s by default) to mirror
// the splash experience; during the delay Loading reports true. When it
// fires, the saved session user is restored through store.Login and the
// persisted theme preference is applied.
//
// # Simulated replies
//
// SimulateReply schedules the canned auto-reply a chat view triggers
// after sending. The view keeps the returned task handle and cancels it
// on teardown, so replies never land in chats whose view is gone. Close
// cancels everything at once when the whole app shuts down.
package app
