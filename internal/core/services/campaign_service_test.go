package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CampaignRepository ---
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) FindCampaignByID(ctx context.Context, workspaceID, campaignID string) (*domain.Campaign, error) {
	args := m.Called(ctx, workspaceID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListCampaignsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Campaign, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) MarkCampaignDeleted(ctx context.Context, workspaceID, campaignID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, workspaceID, campaignID, deletedAt, deleterUserID)
	return args.Error(0)
}

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Publish(ctx context.Context, workspaceID string, kind domain.NotificationKind, message string) error {
	args := m.Called(ctx, workspaceID, kind, message)
	return args.Error(0)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, workspaceID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, workspaceID, unreadOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, workspaceID, notificationID string) error {
	args := m.Called(ctx, workspaceID, notificationID)
	return args.Error(0)
}

// --- Test Suite ---
type CampaignServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockCampaignRepository
	mockNotif *MockNotificationService
	service   portssvc.CampaignSvcFacade
}

func (s *CampaignServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockCampaignRepository)
	s.mockNotif = new(MockNotificationService)
	s.service = services.NewCampaignService(s.mockRepo, s.mockNotif)
}

func (s *CampaignServiceTestSuite) campaign(workspaceID string, status domain.CampaignStatus) *domain.Campaign {
	return &domain.Campaign{
		CampaignID:  uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        "Q3 Outbound",
		Status:      status,
	}
}

func (s *CampaignServiceTestSuite) TestCreateCampaign_StartsAsDraft() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()

	s.mockRepo.On("SaveCampaign", ctx, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.Status == domain.CampaignDraft && c.Name == "Q3 Outbound" && c.CreatedBy == creatorUserID
	})).Return(nil).Once()

	campaign, err := s.service.CreateCampaign(ctx, "ws-1", "Q3 Outbound", "SaaS founders", 200, nil, creatorUserID)

	s.Require().NoError(err)
	s.Equal(domain.CampaignDraft, campaign.Status)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *CampaignServiceTestSuite) TestUpdateCampaignStatus_LaunchPublishesNotification() {
	ctx := context.Background()
	campaign := s.campaign("ws-1", domain.CampaignDraft)

	s.mockRepo.On("FindCampaignByID", ctx, "ws-1", campaign.CampaignID).Return(campaign, nil).Once()
	s.mockRepo.On("UpdateCampaign", ctx, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.Status == domain.CampaignActive
	})).Return(nil).Once()
	s.mockNotif.On("Publish", ctx, "ws-1", domain.NotifCampaignLaunched, mock.Anything).Return(nil).Once()

	updated, err := s.service.UpdateCampaignStatus(ctx, "ws-1", campaign.CampaignID, domain.CampaignActive, uuid.NewString())

	s.Require().NoError(err)
	s.Equal(domain.CampaignActive, updated.Status)
	s.mockNotif.AssertExpectations(s.T())
}

func (s *CampaignServiceTestSuite) TestUpdateCampaignStatus_ResumeDoesNotNotify() {
	ctx := context.Background()
	campaign := s.campaign("ws-1", domain.CampaignPaused)

	s.mockRepo.On("FindCampaignByID", ctx, "ws-1", campaign.CampaignID).Return(campaign, nil).Once()
	s.mockRepo.On("UpdateCampaign", ctx, mock.Anything).Return(nil).Once()

	_, err := s.service.UpdateCampaignStatus(ctx, "ws-1", campaign.CampaignID, domain.CampaignActive, uuid.NewString())

	s.Require().NoError(err)
	s.mockNotif.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CampaignServiceTestSuite) TestUpdateCampaignStatus_IllegalTransitionRejected() {
	ctx := context.Background()
	campaign := s.campaign("ws-1", domain.CampaignCompleted)

	s.mockRepo.On("FindCampaignByID", ctx, "ws-1", campaign.CampaignID).Return(campaign, nil).Once()

	updated, err := s.service.UpdateCampaignStatus(ctx, "ws-1", campaign.CampaignID, domain.CampaignActive, uuid.NewString())

	s.Require().Error(err)
	s.Nil(updated)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateCampaign", mock.Anything, mock.Anything)
}

func (s *CampaignServiceTestSuite) TestUpdateCampaignStatus_DraftCannotComplete() {
	ctx := context.Background()
	campaign := s.campaign("ws-1", domain.CampaignDraft)

	s.mockRepo.On("FindCampaignByID", ctx, "ws-1", campaign.CampaignID).Return(campaign, nil).Once()

	_, err := s.service.UpdateCampaignStatus(ctx, "ws-1", campaign.CampaignID, domain.CampaignCompleted, uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CampaignServiceTestSuite) TestUpdateCampaignStatus_NotificationFailureDoesNotFailLaunch() {
	ctx := context.Background()
	campaign := s.campaign("ws-1", domain.CampaignDraft)

	s.mockRepo.On("FindCampaignByID", ctx, "ws-1", campaign.CampaignID).Return(campaign, nil).Once()
	s.mockRepo.On("UpdateCampaign", ctx, mock.Anything).Return(nil).Once()
	s.mockNotif.On("Publish", ctx, "ws-1", domain.NotifCampaignLaunched, mock.Anything).
		Return(apperrors.NewValidationFailedError("boom")).Once()

	updated, err := s.service.UpdateCampaignStatus(ctx, "ws-1", campaign.CampaignID, domain.CampaignActive, uuid.NewString())

	s.Require().NoError(err)
	s.Equal(domain.CampaignActive, updated.Status)
}

func (s *CampaignServiceTestSuite) TestDeleteCampaign_SoftDeletes() {
	ctx := context.Background()
	campaignID := uuid.NewString()
	deleterUserID := uuid.NewString()

	s.mockRepo.On("MarkCampaignDeleted", ctx, "ws-1", campaignID, mock.Anything, deleterUserID).Return(nil).Once()

	err := s.service.DeleteCampaign(ctx, "ws-1", campaignID, deleterUserID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
