package entries

import (
	"testing"
	"time"

	"stockroom/internal/repository"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) GetEntryRow(entryID int) (*models.StockEntry, error) {
	args := m.Called(entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockEntry), args.Error(1)
}

func (m *MockEntryRepository) GetEntryRows(conditions repository.QueryBuilder, locationID *int) (*[]models.StockEntry, error) {
	args := m.Called(conditions, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]models.StockEntry), args.Error(1)
}

func (m *MockEntryRepository) NextEntrySequence(tx *goqu.TxDatabase, entryType metadata.EntryType, date time.Time) (int, error) {
	args := m.Called(tx, entryType, date)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) InsertEntryRecord(tx *goqu.TxDatabase, req models.StockEntryRequest, entryNumber string, status metadata.EntryStatus) (int, error) {
	args := m.Called(tx, req, entryNumber, status)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) AttachInstances(tx *goqu.TxDatabase, entryID int, instanceIDs []int) error {
	args := m.Called(tx, entryID, instanceIDs)
	return args.Error(0)
}

func (m *MockEntryRepository) GetEntryInstanceIDs(entryID int) ([]int, error) {
	args := m.Called(entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockEntryRepository) GetEntryInstances(entryID int) ([]models.InstanceDetail, error) {
	args := m.Called(entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InstanceDetail), args.Error(1)
}

func (m *MockEntryRepository) UpdateEntryStatus(tx *goqu.TxDatabase, entryID int, status metadata.EntryStatus) error {
	args := m.Called(tx, entryID, status)
	return args.Error(0)
}

func (m *MockEntryRepository) StampActualReturnDate(tx *goqu.TxDatabase, entryIDs []int, date string) error {
	args := m.Called(tx, entryIDs, date)
	return args.Error(0)
}

func (m *MockEntryRepository) FindOpenTemporaryIssues(tx *goqu.TxDatabase, instanceIDs []int) ([]int, error) {
	args := m.Called(tx, instanceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockEntryRepository) GetDashboardStats() (*models.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func TestValidateEntryRejectsUnknownType(t *testing.T) {
	service := &EntryService{}

	validationErrors, err := service.ValidateEntry(models.StockEntryRequest{EntryType: "TRANSFER"})

	assert.NoError(t, err)
	assert.Len(t, validationErrors, 1)
	assert.Equal(t, "entry_type", validationErrors[0].Property)
}

func TestValidateEntryCorrectionRequiresAnchor(t *testing.T) {
	service := &EntryService{}
	to := 1

	validationErrors, err := service.ValidateEntry(models.StockEntryRequest{
		EntryType:  metadata.EntryTypeCorrection.String(),
		ToLocation: &to,
		Item:       5,
		Quantity:   1,
	})

	assert.NoError(t, err)

	properties := make([]string, 0, len(validationErrors))
	for _, validationError := range validationErrors {
		properties = append(properties, validationError.Property)
	}
	assert.Contains(t, properties, "reference_entry")
	assert.Contains(t, properties, "purpose")
	assert.Contains(t, properties, "instances")
}

func TestValidateEntryTemporaryNeedsReturnDate(t *testing.T) {
	service := &EntryService{}
	to := 1
	reference := 7

	validationErrors, err := service.ValidateEntry(models.StockEntryRequest{
		EntryType:      metadata.EntryTypeCorrection.String(),
		ToLocation:     &to,
		Item:           5,
		Quantity:       1,
		IsTemporary:    true,
		ReferenceEntry: &reference,
		Purpose:        "Recount after stocktaking",
		Instances:      []int{11},
	})

	assert.NoError(t, err)
	assert.Len(t, validationErrors, 1)
	assert.Equal(t, "expected_return_date", validationErrors[0].Property)
}

func TestValidateAcknowledgmentFullCoverage(t *testing.T) {
	mockEntryRepo := new(MockEntryRepository)
	service := &EntryService{er: mockEntryRepo}

	mockEntryRepo.On("GetEntryInstanceIDs", 7).Return([]int{101, 102, 103}, nil)

	validationErrors, err := service.ValidateAcknowledgment(7, models.AcknowledgeRequest{
		AcceptedIDs: []int{101, 103},
		RejectedItems: []models.RejectedItem{
			{ID: 102, Reason: "Damaged in transit"},
		},
	})

	assert.NoError(t, err)
	assert.Empty(t, validationErrors)
	mockEntryRepo.AssertExpectations(t)
}

func TestValidateAcknowledgmentForeignInstance(t *testing.T) {
	mockEntryRepo := new(MockEntryRepository)
	service := &EntryService{er: mockEntryRepo}

	mockEntryRepo.On("GetEntryInstanceIDs", 7).Return([]int{101, 102}, nil)

	validationErrors, err := service.ValidateAcknowledgment(7, models.AcknowledgeRequest{
		AcceptedIDs: []int{101, 999},
		RejectedItems: []models.RejectedItem{
			{ID: 102, Reason: "Wrong model"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, validationErrors, 1)
	assert.Equal(t, "accepted_ids", validationErrors[0].Property)
}

func TestValidateAcknowledgmentDuplicateInstance(t *testing.T) {
	mockEntryRepo := new(MockEntryRepository)
	service := &EntryService{er: mockEntryRepo}

	mockEntryRepo.On("GetEntryInstanceIDs", 7).Return([]int{101, 102}, nil)

	validationErrors, err := service.ValidateAcknowledgment(7, models.AcknowledgeRequest{
		AcceptedIDs: []int{101},
		RejectedItems: []models.RejectedItem{
			{ID: 101, Reason: "Also rejected"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, validationErrors, 1)
	assert.Equal(t, "rejected_items", validationErrors[0].Property)
}

func TestValidateAcknowledgmentIncompleteCoverage(t *testing.T) {
	mockEntryRepo := new(MockEntryRepository)
	service := &EntryService{er: mockEntryRepo}

	mockEntryRepo.On("GetEntryInstanceIDs", 7).Return([]int{101, 102, 103}, nil)

	validationErrors, err := service.ValidateAcknowledgment(7, models.AcknowledgeRequest{
		AcceptedIDs: []int{101, 102},
	})

	assert.NoError(t, err)
	assert.Len(t, validationErrors, 1)
	assert.Equal(t, "Every instance of the entry must be accepted or rejected", validationErrors[0].Message)
}
