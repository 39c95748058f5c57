// Package tutor answers questions about a stored session through the
// assistant and keeps the conversation in the transcript store.
package tutor
