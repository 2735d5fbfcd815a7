// Package queue defines message payloads exchanged over the message broker.
package queue

// NoteActivityEvent is published after every successful note mutation.  It
// carries enough for downstream consumers (activity log, analytics) to act
// without querying the primary database.  Action is one of "created",
// "updated", "pin-toggled" or "deleted"; Title is empty for deletions.
type NoteActivityEvent struct {
    NoteID     uint64 `json:"note_id"`
    UserID     uint64 `json:"user_id"`
    Action     string `json:"action"`
    Title      string `json:"title,omitempty"`
    OccurredAt string `json:"occurred_at"`
}
