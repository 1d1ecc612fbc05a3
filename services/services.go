package services

import (
	"errors"
	"fmt"

	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/metrics"
	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/repositories"
)

var (
	// ErrValidation is returned when input fails validation
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateSlackHandle is returned when a slack handle is already taken
	ErrDuplicateSlackHandle = errors.New("slack handle already exists")
)

// Services holds all service instances
type Services struct {
	Logs  LogService
	Team  TeamService
	Hosts *logged.Registry
}

// NewServices creates and initializes all service instances. Team members are
// registered as a logged host type. m may be nil.
func NewServices(repos *repositories.Repositories, hosts *logged.Registry, m *metrics.Metrics) (*Services, error) {
	teamHost, err := hosts.Register(models.TeamMemberHostName)
	if err != nil {
		return nil, fmt.Errorf("failed to register team members: %w", err)
	}

	logs := NewLogService(repos.Logs, hosts, m)
	team := NewTeamService(repos.Team, logs, teamHost)

	if err := hosts.SetExists(teamHost.Name, team.MemberExists); err != nil {
		return nil, err
	}

	return &Services{
		Logs:  logs,
		Team:  team,
		Hosts: hosts,
	}, nil
}
