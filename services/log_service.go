package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/metrics"
	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/repositories"
	"github.com/blogem/logtrail/userctx"
)

// UpdateSubject is the subject of entries written for changed fields
const UpdateSubject = "Update"

// LoggedEntity is a persisted entity with a log trail
type LoggedEntity interface {
	logged.Host
	HostID() int64
}

// LogService interface defines log trail business logic
type LogService interface {
	AddLogEntry(ctx context.Context, ht logged.HostType, host LoggedEntity, subject, text string) (*models.LogEntry, error)
	RecordChanges(ctx context.Context, ht logged.HostType, host LoggedEntity, oldValues, newValues models.Fields) (*models.LogEntry, error)
	AddManualEntry(ctx context.Context, ht logged.HostType, hostID int64, form *models.LogEntryForm) (*models.LogEntry, error)
	LoadLogs(ctx context.Context, ht logged.HostType, host LoggedEntity) error
	GetLogs(ctx context.Context, ht logged.HostType, hostID int64) ([]models.LogEntry, error)
	GetLog(ctx context.Context, id int64) (*models.LogEntry, error)
	PurgeLogs(ctx context.Context, ht logged.HostType, hostID int64) error
}

// logService implements LogService interface
type logService struct {
	logRepo repositories.LogRepository
	hosts   *logged.Registry
	metrics *metrics.Metrics
}

// NewLogService creates a new log service. Manual entries are only accepted for
// hosts that pass the existence checks of hosts. hosts and m may be nil.
func NewLogService(logRepo repositories.LogRepository, hosts *logged.Registry, m *metrics.Metrics) LogService {
	return &logService{logRepo: logRepo, hosts: hosts, metrics: m}
}

// store persists an entry and records the attempt
func (s *logService) store(ctx context.Context, ht logged.HostType, hostID int64, entry *models.LogEntry) error {
	start := time.Now()
	err := s.logRepo.Append(ctx, ht, hostID, entry)
	s.metrics.ObserveAppend(ht.Name, time.Since(start).Seconds(), err)

	if err != nil {
		return fmt.Errorf("failed to store log entry: %w", err)
	}
	return nil
}

// AddLogEntry appends an entry written by the acting user to the host's trail
// and stores it
func (s *logService) AddLogEntry(ctx context.Context, ht logged.HostType, host LoggedEntity, subject, text string) (*models.LogEntry, error) {
	entry := logged.AddLogEntry(host, subject, text, userctx.GetUser(ctx))

	if err := s.store(ctx, ht, host.HostID(), entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// RecordChanges writes an update entry listing the fields that differ between
// the two snapshots. Nothing is written when no field changed.
func (s *logService) RecordChanges(ctx context.Context, ht logged.HostType, host LoggedEntity, oldValues, newValues models.Fields) (*models.LogEntry, error) {
	changes := logged.BuildChanges(oldValues, newValues)
	if changes.IsEmpty() {
		return nil, nil
	}

	text, err := json.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode changes: %w", err)
	}

	return s.AddLogEntry(ctx, ht, host, UpdateSubject, string(text))
}

// AddManualEntry stores an entry written by hand for the given host, which
// must exist
func (s *logService) AddManualEntry(ctx context.Context, ht logged.HostType, hostID int64, form *models.LogEntryForm) (*models.LogEntry, error) {
	if hostID <= 0 {
		return nil, fmt.Errorf("%w: invalid %s ID %d", ErrValidation, ht.Name, hostID)
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(errors, ", "))
	}

	if s.hosts != nil {
		exists, err := s.hosts.HostExists(ctx, ht, hostID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s %d: %w", ht.Name, hostID, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s %d", logged.ErrHostNotFound, ht.Name, hostID)
		}
	}

	entry := logged.NewEntry(userctx.GetUser(ctx))
	entry.Subject = strings.TrimSpace(form.Subject)
	entry.Text = strings.TrimSpace(form.Text)
	entry.Category = form.Category

	if err := s.store(ctx, ht, hostID, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// LoadLogs fills the host's trail with its stored entries
func (s *logService) LoadLogs(ctx context.Context, ht logged.HostType, host LoggedEntity) error {
	entries, err := s.logRepo.ListByHost(ctx, ht, host.HostID())
	if err != nil {
		return fmt.Errorf("failed to load log entries: %w", err)
	}

	for i := range entries {
		host.Logs().Append(&entries[i])
	}

	return nil
}

// GetLogs retrieves the stored entries of a host in append order
func (s *logService) GetLogs(ctx context.Context, ht logged.HostType, hostID int64) ([]models.LogEntry, error) {
	if hostID <= 0 {
		return nil, fmt.Errorf("%w: invalid %s ID %d", ErrValidation, ht.Name, hostID)
	}
	return s.logRepo.ListByHost(ctx, ht, hostID)
}

// GetLog retrieves a single log entry
func (s *logService) GetLog(ctx context.Context, id int64) (*models.LogEntry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid log entry ID %d", ErrValidation, id)
	}
	return s.logRepo.GetByID(ctx, id)
}

// PurgeLogs deletes the trail of a host that is being deleted
func (s *logService) PurgeLogs(ctx context.Context, ht logged.HostType, hostID int64) error {
	if err := s.logRepo.DeleteByHost(ctx, ht, hostID); err != nil {
		return fmt.Errorf("failed to purge log entries: %w", err)
	}
	s.metrics.IncTrailsPurged(ht.Name)
	return nil
}
