package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/userctx"
)

// ErrTeamMemberNotFound is returned when a team member does not exist
var ErrTeamMemberNotFound = errors.New("team member not found")

// TeamRepository interface defines team member database operations
type TeamRepository interface {
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id int) (*models.TeamMember, error)
	GetBySlackHandle(ctx context.Context, slackHandle string) (*models.TeamMember, error)
	GetActiveMembers(ctx context.Context) ([]models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// teamRepository implements TeamRepository interface
type teamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *sql.DB) TeamRepository {
	return &teamRepository{db: db}
}

const teamMemberColumns = `id, name, slack_handle, active, date_added, created_by, modified_by, modified_at`

// GetAll retrieves all team members
func (r *teamRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY name ASC`
	return r.queryMembers(ctx, query)
}

// GetActiveMembers retrieves only active team members
func (r *teamRepository) GetActiveMembers(ctx context.Context) ([]models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE active = 1 ORDER BY date_added ASC, name ASC`
	return r.queryMembers(ctx, query)
}

// GetByID retrieves a team member by ID
func (r *teamRepository) GetByID(ctx context.Context, id int) (*models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = ?`

	member, err := scanTeamMember(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: ID %d", ErrTeamMemberNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	return member, nil
}

// GetBySlackHandle retrieves a team member by slack handle, ignoring case
func (r *teamRepository) GetBySlackHandle(ctx context.Context, slackHandle string) (*models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE slack_handle = ? COLLATE NOCASE`

	member, err := scanTeamMember(r.db.QueryRowContext(ctx, query, slackHandle))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: slack handle %s", ErrTeamMemberNotFound, slackHandle)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	return member, nil
}

// Create creates a new team member
func (r *teamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (name, slack_handle, active, date_added, created_by)
		VALUES (?, ?, ?, ?, ?)
	`

	if member.DateAdded.IsZero() {
		member.DateAdded = time.Now()
	}

	userEmail := userctx.GetUserEmail(ctx)

	result, err := r.db.ExecContext(ctx, query,
		member.Name,
		member.SlackHandle,
		member.Active,
		member.DateAdded,
		userEmail,
	)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	member.ID = int(id)
	member.CreatedBy = userEmail
	return nil
}

// Update updates an existing team member
func (r *teamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = ?, slack_handle = ?, active = ?,
		    modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	userEmail := userctx.GetUserEmail(ctx)
	now := time.Now()

	result, err := r.db.ExecContext(ctx, query,
		member.Name,
		member.SlackHandle,
		member.Active,
		userEmail,
		now,
		member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: ID %d", ErrTeamMemberNotFound, member.ID)
	}

	member.ModifiedBy = userEmail
	member.ModifiedAt = &now
	return nil
}

// Delete deletes a team member by ID
func (r *teamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: ID %d", ErrTeamMemberNotFound, id)
	}

	return nil
}

// Count returns the total number of team members
func (r *teamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}

	return count, nil
}

func (r *teamRepository) queryMembers(ctx context.Context, query string, args ...interface{}) ([]models.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, *member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team members: %w", err)
	}

	return members, nil
}

func scanTeamMember(row rowScanner) (*models.TeamMember, error) {
	var member models.TeamMember
	var modifiedBy sql.NullString
	var modifiedAt sql.NullTime

	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.SlackHandle,
		&member.Active,
		&member.DateAdded,
		&member.CreatedBy,
		&modifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}

	// Convert NULL values to empty string/nil
	if modifiedBy.Valid {
		member.ModifiedBy = modifiedBy.String
	}
	if modifiedAt.Valid {
		member.ModifiedAt = &modifiedAt.Time
	}

	return &member, nil
}
