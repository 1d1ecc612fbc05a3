// Package logged lets entities keep a log trail: it creates log entries,
// appends them to a host's trail and diffs entity snapshots into the text of
// automatically written entries.
package logged

import (
	"fmt"
	"reflect"
	"time"

	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/serializer"
)

// Host is implemented by every entity that has a log trail, usually by
// embedding models.Logged
type Host interface {
	Logs() *models.LogTrail
}

// Owner is implemented by user identities that can own log entries
type Owner interface {
	OwnerID() string
}

// SerializeFunc converts a field value into its canonical string form
type SerializeFunc func(value interface{}) string

// timeNow returns the current time (can be replaced in tests)
var timeNow = time.Now

// NewEntry creates a log entry authored by the given user. The entry is not
// attached to any host.
func NewEntry(user fmt.Stringer) *models.LogEntry {
	entry := &models.LogEntry{
		Author:    author(user),
		CreatedAt: timeNow(),
	}
	if owner, ok := user.(Owner); ok && !isNil(user) {
		entry.OwnerID = owner.OwnerID()
	}
	return entry
}

// AddLogEntry creates an entry with the given subject and text and appends it
// to the host's trail
func AddLogEntry(host Host, subject, text string, user fmt.Stringer) *models.LogEntry {
	entry := NewEntry(user)
	entry.Subject = subject
	entry.Text = text
	entry.Author = author(user)
	host.Logs().Append(entry)
	return entry
}

// BuildChanges returns the old and new value of every field in newValues
// whose serialized value differs from the one in oldValues
func BuildChanges(oldValues, newValues models.Fields) models.Changes {
	return BuildChangesWith(serializer.Serialize, oldValues, newValues)
}

// BuildChangesWith is BuildChanges with a custom serializer. Fields missing
// from newValues are never reported. Reported values are serialized twice.
func BuildChangesWith(serialize SerializeFunc, oldValues, newValues models.Fields) models.Changes {
	changes := models.Changes{}
	for _, field := range newValues {
		old, _ := oldValues.Get(field.Name)
		oldv := serialize(old)
		newv := serialize(field.Value)
		if newv == oldv {
			continue
		}
		changes = append(changes, models.Change{
			Field: field.Name,
			Old:   serialize(oldv),
			New:   serialize(newv),
		})
	}
	return changes
}

// author freezes the textual form of the user at the time of the call
func author(user fmt.Stringer) string {
	if isNil(user) {
		return ""
	}
	return user.String()
}

func isNil(user fmt.Stringer) bool {
	if user == nil {
		return true
	}
	rv := reflect.ValueOf(user)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
