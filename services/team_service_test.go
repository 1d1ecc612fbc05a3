package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/repositories"
	"github.com/blogem/logtrail/repositories/mocks"
	"github.com/blogem/logtrail/userctx"
)

// TeamServiceTestSuite is a test suite for the team service
type TeamServiceTestSuite struct {
	suite.Suite
	service      TeamService
	mockTeamRepo *mocks.MockTeamRepository
	mockLogRepo  *mocks.MockLogRepository
	hostType     logged.HostType
	ctx          context.Context
}

// SetupTest sets up the test suite before each test
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.mockTeamRepo = mocks.NewMockTeamRepository(suite.T())
	suite.mockLogRepo = mocks.NewMockLogRepository(suite.T())

	ht, err := logged.NewRegistry().Register(models.TeamMemberHostName)
	require.NoError(suite.T(), err)
	suite.hostType = ht

	suite.service = NewTeamService(suite.mockTeamRepo, NewLogService(suite.mockLogRepo, nil, nil), ht)
	suite.ctx = userctx.SetUser(context.Background(), userctx.User{ID: "u-1", Email: "admin@example.com"})
}

// TestCreateMember_LogsCreation tests that a created member gets a Create entry
func (suite *TeamServiceTestSuite) TestCreateMember_LogsCreation() {
	form := &models.TeamMemberForm{Name: " John Doe ", SlackHandle: "@john", Active: true}

	suite.mockTeamRepo.EXPECT().GetBySlackHandle(suite.ctx, "@john").
		Return(nil, fmt.Errorf("%w: slack handle @john", repositories.ErrTeamMemberNotFound))
	suite.mockTeamRepo.EXPECT().Create(suite.ctx, mock.AnythingOfType("*models.TeamMember")).
		Run(func(_ context.Context, member *models.TeamMember) { member.ID = 4 }).
		Return(nil)
	suite.mockLogRepo.EXPECT().Append(suite.ctx, suite.hostType, int64(4), mock.Anything).Return(nil)

	// Act
	member, err := suite.service.CreateMember(suite.ctx, form)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "John Doe", member.Name)
	require.Equal(suite.T(), 1, member.Logs().Len())
	entry := member.Logs().Last()
	assert.Equal(suite.T(), CreateSubject, entry.Subject)
	assert.Equal(suite.T(), "Team member John Doe created", entry.Text)
	assert.Equal(suite.T(), "admin@example.com", entry.Author)
}

// TestCreateMember_DuplicateSlackHandle tests that duplicate slack handles are rejected
func (suite *TeamServiceTestSuite) TestCreateMember_DuplicateSlackHandle() {
	form := &models.TeamMemberForm{Name: "John Doe", SlackHandle: "@john"}
	suite.mockTeamRepo.EXPECT().GetBySlackHandle(suite.ctx, "@john").Return(&models.TeamMember{ID: 2}, nil)

	_, err := suite.service.CreateMember(suite.ctx, form)

	assert.ErrorContains(suite.T(), err, "already exists")
}

// TestCreateMember_ValidationFailure tests validation failure before any repository call
func (suite *TeamServiceTestSuite) TestCreateMember_ValidationFailure() {
	_, err := suite.service.CreateMember(suite.ctx, &models.TeamMemberForm{})

	assert.ErrorContains(suite.T(), err, "validation failed")
}

// TestUpdateMember_LogsChangedFields tests that only changed fields are logged
func (suite *TeamServiceTestSuite) TestUpdateMember_LogsChangedFields() {
	existing := &models.TeamMember{ID: 4, Name: "John Doe", SlackHandle: "@john", Active: true}
	form := &models.TeamMemberForm{Name: "John Smith", SlackHandle: "@john", Active: true}

	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(existing, nil)
	suite.mockTeamRepo.EXPECT().Update(suite.ctx, existing).Return(nil)
	suite.mockLogRepo.EXPECT().Append(suite.ctx, suite.hostType, int64(4), mock.Anything).Return(nil)

	member, err := suite.service.UpdateMember(suite.ctx, 4, form)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, member.Logs().Len())
	entry := member.Logs().Last()
	assert.Equal(suite.T(), UpdateSubject, entry.Subject)
	assert.JSONEq(suite.T(), `{"name":{"old":"John Doe","new":"John Smith"}}`, entry.Text)
}

// TestUpdateMember_NothingChanged tests that an update without changes writes no entry
func (suite *TeamServiceTestSuite) TestUpdateMember_NothingChanged() {
	existing := &models.TeamMember{ID: 4, Name: "John Doe", SlackHandle: "@john", Active: true}
	form := &models.TeamMemberForm{Name: "John Doe", SlackHandle: "@john", Active: true}

	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(existing, nil)
	suite.mockTeamRepo.EXPECT().Update(suite.ctx, existing).Return(nil)

	member, err := suite.service.UpdateMember(suite.ctx, 4, form)

	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), member.Logs().Len())
}

// TestDeactivateMember tests the soft delete and its log entry
func (suite *TeamServiceTestSuite) TestDeactivateMember() {
	existing := &models.TeamMember{ID: 4, Name: "John Doe", Active: true}

	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(existing, nil)
	suite.mockTeamRepo.EXPECT().Update(suite.ctx, existing).Return(nil)
	suite.mockLogRepo.EXPECT().
		Append(suite.ctx, suite.hostType, int64(4), mock.MatchedBy(func(entry *models.LogEntry) bool {
			return entry.Subject == DeactivateSubject
		})).
		Return(nil)

	require.NoError(suite.T(), suite.service.DeactivateMember(suite.ctx, 4))
	assert.False(suite.T(), existing.Active)
}

// TestActivateMember_AlreadyActive tests that activating an active member fails
func (suite *TeamServiceTestSuite) TestActivateMember_AlreadyActive() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(&models.TeamMember{ID: 4, Active: true}, nil)

	err := suite.service.ActivateMember(suite.ctx, 4)

	assert.ErrorContains(suite.T(), err, "already active")
}

// TestDeleteMember_PurgesLogs tests that the trail is deleted before the member
func (suite *TeamServiceTestSuite) TestDeleteMember_PurgesLogs() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(&models.TeamMember{ID: 4}, nil)
	purge := suite.mockLogRepo.EXPECT().DeleteByHost(suite.ctx, suite.hostType, int64(4)).Return(nil)
	suite.mockTeamRepo.EXPECT().Delete(suite.ctx, 4).Return(nil).NotBefore(purge.Call)

	assert.NoError(suite.T(), suite.service.DeleteMember(suite.ctx, 4))
}

// TestDeleteMember_PurgeFailureKeepsMember tests that a failed purge leaves the member in place
func (suite *TeamServiceTestSuite) TestDeleteMember_PurgeFailureKeepsMember() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(&models.TeamMember{ID: 4}, nil)
	suite.mockLogRepo.EXPECT().DeleteByHost(suite.ctx, suite.hostType, int64(4)).
		Return(errors.New("database is locked"))

	err := suite.service.DeleteMember(suite.ctx, 4)

	assert.ErrorContains(suite.T(), err, "failed to purge log entries")
	suite.mockTeamRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

// TestDeleteMember_NotFound tests that a missing member leaves the trail alone
func (suite *TeamServiceTestSuite) TestDeleteMember_NotFound() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).
		Return(nil, fmt.Errorf("%w: ID 4", repositories.ErrTeamMemberNotFound))

	err := suite.service.DeleteMember(suite.ctx, 4)

	assert.True(suite.T(), errors.Is(err, repositories.ErrTeamMemberNotFound))
	suite.mockLogRepo.AssertNotCalled(suite.T(), "DeleteByHost", mock.Anything, mock.Anything, mock.Anything)
}

// TestMemberExists tests the existence check used for manual log entries
func (suite *TeamServiceTestSuite) TestMemberExists() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(&models.TeamMember{ID: 4}, nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 999).
		Return(nil, fmt.Errorf("%w: ID 999", repositories.ErrTeamMemberNotFound))
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 13).Return(nil, errors.New("database is locked"))

	ok, err := suite.service.MemberExists(suite.ctx, 4)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), ok)

	ok, err = suite.service.MemberExists(suite.ctx, 999)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)

	_, err = suite.service.MemberExists(suite.ctx, 13)
	assert.Error(suite.T(), err)

	ok, err = suite.service.MemberExists(suite.ctx, 0)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)
}

// TestGetMemberByID_LoadsLogs tests that the trail is loaded with the member
func (suite *TeamServiceTestSuite) TestGetMemberByID_LoadsLogs() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.ctx, 4).Return(&models.TeamMember{ID: 4, Name: "John Doe"}, nil)
	suite.mockLogRepo.EXPECT().ListByHost(suite.ctx, suite.hostType, int64(4)).
		Return([]models.LogEntry{{ID: 1, Subject: CreateSubject}}, nil)

	member, err := suite.service.GetMemberByID(suite.ctx, 4)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, member.Logs().Len())
	assert.Equal(suite.T(), CreateSubject, member.Logs().Last().Subject)
}

// TestTeamServiceTestSuite runs the team service test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
