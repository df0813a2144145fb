package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OnboardingRepository ---
type MockOnboardingRepository struct {
	mock.Mock
}

func (m *MockOnboardingRepository) FindBriefByWorkspace(ctx context.Context, workspaceID string) (*domain.OnboardingBrief, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnboardingBrief), args.Error(1)
}

func (m *MockOnboardingRepository) SaveBrief(ctx context.Context, brief domain.OnboardingBrief) error {
	args := m.Called(ctx, brief)
	return args.Error(0)
}

func (m *MockOnboardingRepository) UpdateBrief(ctx context.Context, brief domain.OnboardingBrief) error {
	args := m.Called(ctx, brief)
	return args.Error(0)
}

// --- Test Suite ---
type OnboardingServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockOnboardingRepository
	mockNotif *MockNotificationService
	service   portssvc.OnboardingSvcFacade
}

func (s *OnboardingServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockOnboardingRepository)
	s.mockNotif = new(MockNotificationService)
	s.service = services.NewOnboardingService(s.mockRepo, s.mockNotif)
}

func draftBrief(workspaceID string, steps ...domain.BriefStep) *domain.OnboardingBrief {
	brief := &domain.OnboardingBrief{
		BriefID:     uuid.NewString(),
		WorkspaceID: workspaceID,
		Status:      domain.BriefDraft,
		Steps:       make(map[domain.BriefStep]json.RawMessage),
	}
	for _, step := range steps {
		brief.Steps[step] = json.RawMessage(`{"filled":true}`)
	}
	return brief
}

func (s *OnboardingServiceTestSuite) TestGetBrief_CreatesDraftOnFirstAccess() {
	ctx := context.Background()

	s.mockRepo.On("FindBriefByWorkspace", ctx, "ws-1").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveBrief", ctx, mock.MatchedBy(func(b domain.OnboardingBrief) bool {
		return b.WorkspaceID == "ws-1" && b.Status == domain.BriefDraft && len(b.Steps) == 0
	})).Return(nil).Once()

	brief, err := s.service.GetBrief(ctx, "ws-1")

	s.Require().NoError(err)
	s.Equal(domain.BriefDraft, brief.Status)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *OnboardingServiceTestSuite) TestSaveStep_StoresPayload() {
	ctx := context.Background()
	brief := draftBrief("ws-1")
	payload := json.RawMessage(`{"industry":"saas","headcount":40}`)

	s.mockRepo.On("FindBriefByWorkspace", ctx, "ws-1").Return(brief, nil).Once()
	s.mockRepo.On("UpdateBrief", ctx, mock.MatchedBy(func(b domain.OnboardingBrief) bool {
		return string(b.Steps[domain.StepCompanyProfile]) == string(payload)
	})).Return(nil).Once()

	updated, err := s.service.SaveStep(ctx, "ws-1", domain.StepCompanyProfile, payload, uuid.NewString())

	s.Require().NoError(err)
	s.Contains(updated.Steps, domain.StepCompanyProfile)
}

func (s *OnboardingServiceTestSuite) TestSaveStep_UnknownStepRejected() {
	ctx := context.Background()

	_, err := s.service.SaveStep(ctx, "ws-1", domain.BriefStep("budget"), json.RawMessage(`{}`), uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "FindBriefByWorkspace", mock.Anything, mock.Anything)
}

func (s *OnboardingServiceTestSuite) TestSaveStep_InvalidJSONRejected() {
	ctx := context.Background()

	_, err := s.service.SaveStep(ctx, "ws-1", domain.StepTargeting, json.RawMessage(`{not json`), uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *OnboardingServiceTestSuite) TestSaveStep_SubmittedBriefIsFrozen() {
	ctx := context.Background()
	brief := draftBrief("ws-1", domain.BriefSteps...)
	brief.Status = domain.BriefSubmitted

	s.mockRepo.On("FindBriefByWorkspace", ctx, "ws-1").Return(brief, nil).Once()

	_, err := s.service.SaveStep(ctx, "ws-1", domain.StepTargeting, json.RawMessage(`{}`), uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateBrief", mock.Anything, mock.Anything)
}

func (s *OnboardingServiceTestSuite) TestSubmitBrief_RequiresAllSteps() {
	ctx := context.Background()
	brief := draftBrief("ws-1", domain.StepCompanyProfile, domain.StepIdealCustomer)

	s.mockRepo.On("FindBriefByWorkspace", ctx, "ws-1").Return(brief, nil).Once()

	_, err := s.service.SubmitBrief(ctx, "ws-1", uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "UpdateBrief", mock.Anything, mock.Anything)
	s.mockNotif.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *OnboardingServiceTestSuite) TestSubmitBrief_CompleteBriefFreezesAndNotifies() {
	ctx := context.Background()
	brief := draftBrief("ws-1", domain.BriefSteps...)

	s.mockRepo.On("FindBriefByWorkspace", ctx, "ws-1").Return(brief, nil).Once()
	s.mockRepo.On("UpdateBrief", ctx, mock.MatchedBy(func(b domain.OnboardingBrief) bool {
		return b.Status == domain.BriefSubmitted && b.SubmittedAt != nil
	})).Return(nil).Once()
	s.mockNotif.On("Publish", ctx, "ws-1", domain.NotifBriefSubmitted, mock.Anything).Return(nil).Once()

	submitted, err := s.service.SubmitBrief(ctx, "ws-1", uuid.NewString())

	s.Require().NoError(err)
	s.Equal(domain.BriefSubmitted, submitted.Status)
	s.mockNotif.AssertExpectations(s.T())
}

func (s *OnboardingServiceTestSuite) TestSubmitBrief_DoubleSubmitRejected() {
	ctx := context.Background()
	brief := draftBrief("ws-1", domain.BriefSteps...)
	brief.Status = domain.BriefSubmitted

	s.mockRepo.On("FindBriefByWorkspace", ctx, "ws-1").Return(brief, nil).Once()

	_, err := s.service.SubmitBrief(ctx, "ws-1", uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}
