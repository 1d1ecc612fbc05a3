package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/repositories"
)

// Subjects of the entries team members write to their own trail
const (
	CreateSubject     = "Create"
	ActivateSubject   = "Activate"
	DeactivateSubject = "Deactivate"
)

// TeamService interface defines team management business logic
type TeamService interface {
	GetAllMembers(ctx context.Context) ([]models.TeamMember, error)
	GetMemberByID(ctx context.Context, id int) (*models.TeamMember, error)
	GetActiveMembers(ctx context.Context) ([]models.TeamMember, error)
	CreateMember(ctx context.Context, form *models.TeamMemberForm) (*models.TeamMember, error)
	UpdateMember(ctx context.Context, id int, form *models.TeamMemberForm) (*models.TeamMember, error)
	DeleteMember(ctx context.Context, id int) error
	DeactivateMember(ctx context.Context, id int) error
	ActivateMember(ctx context.Context, id int) error
	GetMemberCount(ctx context.Context) (int, error)
	MemberExists(ctx context.Context, id int64) (bool, error)
}

// teamService implements TeamService interface
type teamService struct {
	teamRepo   repositories.TeamRepository
	logService LogService
	hostType   logged.HostType
}

// NewTeamService creates a new team service; hostType is the registration of team members
func NewTeamService(teamRepo repositories.TeamRepository, logService LogService, hostType logged.HostType) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		logService: logService,
		hostType:   hostType,
	}
}

// GetAllMembers retrieves all team members
func (s *teamService) GetAllMembers(ctx context.Context) ([]models.TeamMember, error) {
	return s.teamRepo.GetAll(ctx)
}

// GetMemberByID retrieves a team member by ID together with its log trail
func (s *teamService) GetMemberByID(ctx context.Context, id int) (*models.TeamMember, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid team member ID %d", ErrValidation, id)
	}

	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.logService.LoadLogs(ctx, s.hostType, member); err != nil {
		return nil, err
	}

	return member, nil
}

// GetActiveMembers retrieves only active team members
func (s *teamService) GetActiveMembers(ctx context.Context) ([]models.TeamMember, error) {
	return s.teamRepo.GetActiveMembers(ctx)
}

// CreateMember creates a new team member with validation and logs its creation
func (s *teamService) CreateMember(ctx context.Context, form *models.TeamMemberForm) (*models.TeamMember, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(errors, ", "))
	}

	if err := s.checkSlackHandle(ctx, 0, form.SlackHandle); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		Name:        strings.TrimSpace(form.Name),
		SlackHandle: strings.TrimSpace(form.SlackHandle),
		Active:      form.Active,
	}

	if err := s.teamRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	text := fmt.Sprintf("Team member %s created", member.Name)
	if _, err := s.logService.AddLogEntry(ctx, s.hostType, member, CreateSubject, text); err != nil {
		return nil, err
	}

	return member, nil
}

// UpdateMember updates an existing team member and logs the changed fields
func (s *teamService) UpdateMember(ctx context.Context, id int, form *models.TeamMemberForm) (*models.TeamMember, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid team member ID %d", ErrValidation, id)
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(errors, ", "))
	}

	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("team member not found: %w", err)
	}

	if !strings.EqualFold(form.SlackHandle, member.SlackHandle) {
		if err := s.checkSlackHandle(ctx, id, form.SlackHandle); err != nil {
			return nil, err
		}
	}

	oldValues := member.Fields()

	member.Name = strings.TrimSpace(form.Name)
	member.SlackHandle = strings.TrimSpace(form.SlackHandle)
	member.Active = form.Active

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	if _, err := s.logService.RecordChanges(ctx, s.hostType, member, oldValues, member.Fields()); err != nil {
		return nil, err
	}

	return member, nil
}

// DeleteMember permanently deletes a team member together with its log trail
func (s *teamService) DeleteMember(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid team member ID %d", ErrValidation, id)
	}

	if _, err := s.teamRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("team member not found: %w", err)
	}

	// The trail goes first so a failed purge keeps the member and its trail together
	if err := s.logService.PurgeLogs(ctx, s.hostType, int64(id)); err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	return nil
}

// DeactivateMember deactivates a team member (soft delete)
func (s *teamService) DeactivateMember(ctx context.Context, id int) error {
	return s.setActive(ctx, id, false)
}

// ActivateMember activates a team member
func (s *teamService) ActivateMember(ctx context.Context, id int) error {
	return s.setActive(ctx, id, true)
}

// GetMemberCount returns the total number of team members
func (s *teamService) GetMemberCount(ctx context.Context) (int, error) {
	return s.teamRepo.Count(ctx)
}

// MemberExists reports whether a team member with the given ID is stored
func (s *teamService) MemberExists(ctx context.Context, id int64) (bool, error) {
	if id <= 0 || id > math.MaxInt {
		return false, nil
	}

	_, err := s.teamRepo.GetByID(ctx, int(id))
	if errors.Is(err, repositories.ErrTeamMemberNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *teamService) setActive(ctx context.Context, id int, active bool) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid team member ID %d", ErrValidation, id)
	}

	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("team member not found: %w", err)
	}

	subject, state := ActivateSubject, "active"
	if !active {
		subject, state = DeactivateSubject, "inactive"
	}

	if member.Active == active {
		return fmt.Errorf("%w: team member is already %s", ErrValidation, state)
	}

	member.Active = active
	if err := s.teamRepo.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to %s team member: %w", strings.ToLower(subject), err)
	}

	_, err = s.logService.AddLogEntry(ctx, s.hostType, member, subject, "")
	return err
}

// checkSlackHandle fails if another member already uses the slack handle
func (s *teamService) checkSlackHandle(ctx context.Context, id int, slackHandle string) error {
	if slackHandle == "" {
		return nil
	}

	existing, err := s.teamRepo.GetBySlackHandle(ctx, slackHandle)
	if errors.Is(err, repositories.ErrTeamMemberNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check slack handle: %w", err)
	}

	if existing.ID != id {
		return fmt.Errorf("%w: %s", ErrDuplicateSlackHandle, slackHandle)
	}
	return nil
}
