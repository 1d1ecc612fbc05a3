package models

import (
	"strings"
	"time"
)

// LogEntry represents a single entry in a host entity's log trail
type LogEntry struct {
	ID        int64     `json:"id" db:"id"`
	Author    string    `json:"author" db:"author"` // snapshot of the acting user, kept even if the user is removed
	Category  *int      `json:"category,omitempty" db:"category"`
	Subject   string    `json:"subject" db:"subject"`
	Text      string    `json:"text,omitempty" db:"text"`
	OwnerID   string    `json:"owner_id,omitempty" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LogEntryForm represents form data for a manually written log entry
type LogEntryForm struct {
	Subject  string `json:"subject"`
	Text     string `json:"text"`
	Category *int   `json:"category,omitempty"`
}

// Validate validates the log entry form data
func (f *LogEntryForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Subject) == "" {
		errors = append(errors, "Subject is required")
	}

	if len(f.Subject) > 255 {
		errors = append(errors, "Subject must be less than 255 characters")
	}

	if f.Category != nil && *f.Category < 0 {
		errors = append(errors, "Category must not be negative")
	}

	return errors
}

// LogTrail is the ordered, append-only list of log entries of one host entity
type LogTrail struct {
	entries []*LogEntry
}

// Append adds an entry at the end of the trail
func (t *LogTrail) Append(entry *LogEntry) {
	t.entries = append(t.entries, entry)
}

// Entries returns the entries in append order
func (t *LogTrail) Entries() []*LogEntry {
	entries := make([]*LogEntry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Len returns the number of entries in the trail
func (t *LogTrail) Len() int {
	return len(t.entries)
}

// Last returns the most recent entry, or nil for an empty trail
func (t *LogTrail) Last() *LogEntry {
	if len(t.entries) == 0 {
		return nil
	}
	return t.entries[len(t.entries)-1]
}

// Logged gives an entity a log trail when embedded
type Logged struct {
	logs LogTrail
}

// Logs returns the entity's log trail
func (l *Logged) Logs() *LogTrail {
	return &l.logs
}
