// Package session drives the conjugation exchange over named, persisted
// sessions.
//
// Each operation loads a session from the SessionStore, runs exactly one
// protocol phase, appends a structured Event to the session history and
// saves it back. Callers render the returned Event; nothing here produces
// user-facing text.
package session
