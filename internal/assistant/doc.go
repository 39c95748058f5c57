// Package assistant provides an HTTP implementation of the domain.Assistant
// interface.
//
// The assistant answers free-text questions about a session by forwarding
// the ordered transcript plus the new utterance to a chat-completions
// service. When no endpoint or API key is configured, or the service fails,
// it answers with built-in English text instead, so a caller always gets a
// non-empty answer.
//
// Requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the URL and status
// text to aid diagnostics.
package assistant
