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

// --- Mock CallLogRepository ---
type MockCallLogRepository struct {
	mock.Mock
}

func (m *MockCallLogRepository) FindCallLogByID(ctx context.Context, workspaceID, callLogID string) (*domain.CallLog, error) {
	args := m.Called(ctx, workspaceID, callLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CallLog), args.Error(1)
}

func (m *MockCallLogRepository) ListCallLogs(ctx context.Context, workspaceID string, campaignID string, beforeCalledAt *time.Time, beforeID string, limit int) ([]domain.CallLog, error) {
	args := m.Called(ctx, workspaceID, campaignID, beforeCalledAt, beforeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CallLog), args.Error(1)
}

func (m *MockCallLogRepository) SaveCallLog(ctx context.Context, log domain.CallLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, workspaceID, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, workspaceID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, workspaceID, campaignID string, afterCreatedAt *time.Time, afterID string, limit int) ([]domain.Contact, error) {
	args := m.Called(ctx, workspaceID, campaignID, afterCreatedAt, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) SaveContacts(ctx context.Context, contacts []domain.Contact) error {
	args := m.Called(ctx, contacts)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// --- Test Suite ---
type CallLogServiceTestSuite struct {
	suite.Suite
	mockLogs     *MockCallLogRepository
	mockContacts *MockContactRepository
	service      portssvc.CallLogSvcFacade
}

func (s *CallLogServiceTestSuite) SetupTest() {
	s.mockLogs = new(MockCallLogRepository)
	s.mockContacts = new(MockContactRepository)
	s.service = services.NewCallLogService(s.mockLogs, s.mockContacts)
}

func (s *CallLogServiceTestSuite) contact(campaignID string, status domain.ContactStatus) *domain.Contact {
	return &domain.Contact{
		ContactID:   uuid.NewString(),
		WorkspaceID: "ws-1",
		CampaignID:  campaignID,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Status:      status,
	}
}

func (s *CallLogServiceTestSuite) TestRecordCall_MeetingBookedAdvancesToInterested() {
	ctx := context.Background()
	contact := s.contact("camp-1", domain.ContactContacted)
	bdrUserID := uuid.NewString()

	s.mockContacts.On("FindContactByID", ctx, "ws-1", contact.ContactID).Return(contact, nil).Once()
	s.mockLogs.On("SaveCallLog", ctx, mock.MatchedBy(func(l domain.CallLog) bool {
		return l.Outcome == domain.OutcomeMeetingBooked && l.BDRUserID == bdrUserID && !l.CalledAt.IsZero()
	})).Return(nil).Once()
	s.mockContacts.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.Status == domain.ContactInterested
	})).Return(nil).Once()

	log, err := s.service.RecordCall(ctx, "ws-1", portssvc.NewCallLog{
		CampaignID:      "camp-1",
		ContactID:       contact.ContactID,
		Outcome:         domain.OutcomeMeetingBooked,
		DurationSeconds: 310,
	}, bdrUserID)

	s.Require().NoError(err)
	s.Require().NotNil(log)
	s.mockContacts.AssertExpectations(s.T())
}

func (s *CallLogServiceTestSuite) TestRecordCall_NoAnswerOnNewContactMarksContacted() {
	ctx := context.Background()
	contact := s.contact("camp-1", domain.ContactNew)

	s.mockContacts.On("FindContactByID", ctx, "ws-1", contact.ContactID).Return(contact, nil).Once()
	s.mockLogs.On("SaveCallLog", ctx, mock.Anything).Return(nil).Once()
	s.mockContacts.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.Status == domain.ContactContacted
	})).Return(nil).Once()

	_, err := s.service.RecordCall(ctx, "ws-1", portssvc.NewCallLog{
		CampaignID: "camp-1",
		ContactID:  contact.ContactID,
		Outcome:    domain.OutcomeNoAnswer,
	}, uuid.NewString())

	s.Require().NoError(err)
	s.mockContacts.AssertExpectations(s.T())
}

func (s *CallLogServiceTestSuite) TestRecordCall_NoAnswerOnWorkedContactLeavesStatus() {
	ctx := context.Background()
	contact := s.contact("camp-1", domain.ContactInterested)

	s.mockContacts.On("FindContactByID", ctx, "ws-1", contact.ContactID).Return(contact, nil).Once()
	s.mockLogs.On("SaveCallLog", ctx, mock.Anything).Return(nil).Once()

	_, err := s.service.RecordCall(ctx, "ws-1", portssvc.NewCallLog{
		CampaignID: "camp-1",
		ContactID:  contact.ContactID,
		Outcome:    domain.OutcomeVoicemail,
	}, uuid.NewString())

	s.Require().NoError(err)
	s.mockContacts.AssertNotCalled(s.T(), "UpdateContact", mock.Anything, mock.Anything)
}

func (s *CallLogServiceTestSuite) TestRecordCall_DNCContactRejected() {
	ctx := context.Background()
	contact := s.contact("camp-1", domain.ContactDoNotCall)

	s.mockContacts.On("FindContactByID", ctx, "ws-1", contact.ContactID).Return(contact, nil).Once()

	log, err := s.service.RecordCall(ctx, "ws-1", portssvc.NewCallLog{
		CampaignID: "camp-1",
		ContactID:  contact.ContactID,
		Outcome:    domain.OutcomeConversation,
	}, uuid.NewString())

	s.Require().Error(err)
	s.Nil(log)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockLogs.AssertNotCalled(s.T(), "SaveCallLog", mock.Anything, mock.Anything)
}

func (s *CallLogServiceTestSuite) TestRecordCall_CrossCampaignContactRejected() {
	ctx := context.Background()
	contact := s.contact("camp-other", domain.ContactNew)

	s.mockContacts.On("FindContactByID", ctx, "ws-1", contact.ContactID).Return(contact, nil).Once()

	_, err := s.service.RecordCall(ctx, "ws-1", portssvc.NewCallLog{
		CampaignID: "camp-1",
		ContactID:  contact.ContactID,
		Outcome:    domain.OutcomeConversation,
	}, uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CallLogServiceTestSuite) TestRecordCall_ContactUpdateFailureDoesNotFailCall() {
	ctx := context.Background()
	contact := s.contact("camp-1", domain.ContactNew)

	s.mockContacts.On("FindContactByID", ctx, "ws-1", contact.ContactID).Return(contact, nil).Once()
	s.mockLogs.On("SaveCallLog", ctx, mock.Anything).Return(nil).Once()
	s.mockContacts.On("UpdateContact", ctx, mock.Anything).Return(apperrors.NewValidationFailedError("boom")).Once()

	log, err := s.service.RecordCall(ctx, "ws-1", portssvc.NewCallLog{
		CampaignID: "camp-1",
		ContactID:  contact.ContactID,
		Outcome:    domain.OutcomeConversation,
	}, uuid.NewString())

	s.Require().NoError(err)
	s.NotNil(log)
}

func (s *CallLogServiceTestSuite) TestListCallLogs_PaginatesWithLookahead() {
	ctx := context.Background()
	logs := make([]domain.CallLog, 3)
	base := time.Now()
	for i := range logs {
		logs[i] = domain.CallLog{
			CallLogID: uuid.NewString(),
			CalledAt:  base.Add(-time.Duration(i) * time.Minute),
		}
	}

	s.mockLogs.On("ListCallLogs", ctx, "ws-1", "camp-1", (*time.Time)(nil), "", 3).Return(logs, nil).Once()

	page, err := s.service.ListCallLogs(ctx, "ws-1", "camp-1", "", 2)

	s.Require().NoError(err)
	s.Len(page.CallLogs, 2)
	s.NotEmpty(page.NextToken)
}

func (s *CallLogServiceTestSuite) TestListCallLogs_LastPageHasNoToken() {
	ctx := context.Background()

	s.mockLogs.On("ListCallLogs", ctx, "ws-1", "", (*time.Time)(nil), "", 51).
		Return([]domain.CallLog{{CallLogID: uuid.NewString(), CalledAt: time.Now()}}, nil).Once()

	page, err := s.service.ListCallLogs(ctx, "ws-1", "", "", 0)

	s.Require().NoError(err)
	s.Len(page.CallLogs, 1)
	s.Empty(page.NextToken)
}

func TestCallLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CallLogServiceTestSuite))
}
