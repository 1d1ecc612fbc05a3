package models

import (
	"time"
)

// AuditFields contains common audit tracking fields
type AuditFields struct {
	CreatedBy  string     `json:"created_by,omitempty"`
	ModifiedBy string     `json:"modified_by,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
