package models

import (
	"strings"
	"time"
)

// TeamMemberHostName is the name team members are registered under for logging
const TeamMemberHostName = "teammember"

// TeamMember represents a team member; every change to it is written to its log trail
type TeamMember struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	SlackHandle string    `json:"slack_handle" db:"slack_handle"`
	Active      bool      `json:"active" db:"active"`
	DateAdded   time.Time `json:"date_added" db:"date_added"`
	AuditFields
	Logged `json:"-"`
}

// HostID returns the ID the member's log trail is keyed by
func (m *TeamMember) HostID() int64 {
	return int64(m.ID)
}

// Fields returns the snapshot of the member's mutable attributes
func (m *TeamMember) Fields() Fields {
	return Fields{
		{Name: "name", Value: m.Name},
		{Name: "slack_handle", Value: m.SlackHandle},
		{Name: "active", Value: m.Active},
	}
}

// TeamMemberForm represents form data for creating/updating team members
type TeamMemberForm struct {
	Name        string `json:"name"`
	SlackHandle string `json:"slack_handle"`
	Active      bool   `json:"active"`
}

// Validate validates the team member form data
func (f *TeamMemberForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if f.SlackHandle != "" && len(f.SlackHandle) > 255 {
		errors = append(errors, "Slack handle must be less than 255 characters")
	}

	if f.SlackHandle != "" && !strings.HasPrefix(f.SlackHandle, "@") {
		errors = append(errors, "Slack handle must start with @")
	}

	return errors
}
