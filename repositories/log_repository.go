package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/models"
)

var (
	// ErrLogNotFound is returned when a log entry does not exist
	ErrLogNotFound = errors.New("log entry not found")
	// ErrSubjectRequired is returned when persisting a log entry without a subject
	ErrSubjectRequired = errors.New("log entry subject is required")
)

// LogRepository interface defines log entry database operations
type LogRepository interface {
	EnsureRelation(ctx context.Context, ht logged.HostType) error
	Append(ctx context.Context, ht logged.HostType, hostID int64, entry *models.LogEntry) error
	GetByID(ctx context.Context, id int64) (*models.LogEntry, error)
	ListByHost(ctx context.Context, ht logged.HostType, hostID int64) ([]models.LogEntry, error)
	CountByHost(ctx context.Context, ht logged.HostType, hostID int64) (int, error)
	DeleteByHost(ctx context.Context, ht logged.HostType, hostID int64) error
}

// logRepository implements LogRepository interface
type logRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *sql.DB) LogRepository {
	return &logRepository{db: db}
}

// EnsureRelation creates the table linking hosts of the given type to their log entries
func (r *logRepository) EnsureRelation(ctx context.Context, ht logged.HostType) error {
	table, err := relationTable(ht)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			iid INTEGER NOT NULL,
			lid INTEGER NOT NULL REFERENCES logs(id) ON DELETE CASCADE,
			PRIMARY KEY (iid, lid)
		)
	`, table)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create relation table %s: %w", table, err)
	}

	return nil
}

// Append stores the entry and links it to the end of the host's trail
func (r *logRepository) Append(ctx context.Context, ht logged.HostType, hostID int64, entry *models.LogEntry) error {
	if strings.TrimSpace(entry.Subject) == "" {
		return ErrSubjectRequired
	}

	table, err := relationTable(ht)
	if err != nil {
		return err
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var category sql.NullInt64
	if entry.Category != nil {
		category = sql.NullInt64{Int64: int64(*entry.Category), Valid: true}
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO logs (author, category, subject, text, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		entry.Author,
		category,
		entry.Subject,
		nullString(entry.Text),
		nullString(entry.OwnerID),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (iid, lid) VALUES (?, ?)`, table)
	if _, err := tx.ExecContext(ctx, query, hostID, id); err != nil {
		return fmt.Errorf("failed to link log entry to %s %d: %w", ht.Name, hostID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit log entry: %w", err)
	}

	entry.ID = id
	return nil
}

// GetByID retrieves a log entry by ID
func (r *logRepository) GetByID(ctx context.Context, id int64) (*models.LogEntry, error) {
	query := `
		SELECT id, author, category, subject, text, owner_id, created_at
		FROM logs
		WHERE id = ?
	`

	entry, err := scanLogEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: ID %d", ErrLogNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get log entry: %w", err)
	}

	return entry, nil
}

// ListByHost retrieves the host's log entries in the order they were appended
func (r *logRepository) ListByHost(ctx context.Context, ht logged.HostType, hostID int64) ([]models.LogEntry, error) {
	table, err := relationTable(ht)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT l.id, l.author, l.category, l.subject, l.text, l.owner_id, l.created_at
		FROM logs l
		JOIN %s nm ON nm.lid = l.id
		WHERE nm.iid = ?
		ORDER BY nm.rowid ASC
	`, table)

	rows, err := r.db.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer rows.Close()

	entries := []models.LogEntry{}
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log entries: %w", err)
	}

	return entries, nil
}

// CountByHost returns the number of log entries of the host
func (r *logRepository) CountByHost(ctx context.Context, ht logged.HostType, hostID int64) (int, error) {
	table, err := relationTable(ht)
	if err != nil {
		return 0, err
	}

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE iid = ?`, table)
	if err := r.db.QueryRowContext(ctx, query, hostID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count log entries: %w", err)
	}

	return count, nil
}

// DeleteByHost deletes the host's log entries together with their links
func (r *logRepository) DeleteByHost(ctx context.Context, ht logged.HostType, hostID int64) error {
	table, err := relationTable(ht)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleteLogs := fmt.Sprintf(`DELETE FROM logs WHERE id IN (SELECT lid FROM %s WHERE iid = ?)`, table)
	if _, err := tx.ExecContext(ctx, deleteLogs, hostID); err != nil {
		return fmt.Errorf("failed to delete log entries: %w", err)
	}

	// Links are removed by the cascade; this covers databases without foreign keys
	deleteLinks := fmt.Sprintf(`DELETE FROM %s WHERE iid = ?`, table)
	if _, err := tx.ExecContext(ctx, deleteLinks, hostID); err != nil {
		return fmt.Errorf("failed to delete log links: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit log deletion: %w", err)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLogEntry(row rowScanner) (*models.LogEntry, error) {
	var entry models.LogEntry
	var author, text, ownerID sql.NullString
	var category sql.NullInt64

	err := row.Scan(
		&entry.ID,
		&author,
		&category,
		&entry.Subject,
		&text,
		&ownerID,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Convert NULL values to empty string/nil
	entry.Author = author.String
	entry.Text = text.String
	entry.OwnerID = ownerID.String
	if category.Valid {
		c := int(category.Int64)
		entry.Category = &c
	}

	return &entry, nil
}

// relationTable returns the host type's relation table, refusing names that
// did not come from the registry
func relationTable(ht logged.HostType) (string, error) {
	if !logged.ValidHostName(ht.Name) || ht.RelationTable != logged.RelationTable(ht.Name) {
		return "", fmt.Errorf("%w: %q", logged.ErrInvalidHostName, ht.Name)
	}
	return ht.RelationTable, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
