// Package services: services/mock_data_service.go
package services

import (
	"github.com/stretchr/testify/mock"

	"marketing-planner/models"
)

// Ensure MockDataService implements DataService
var _ DataService = (*MockDataService)(nil)

// MockDataService is a mock implementation for testing and extends `mock.Mock`
type MockDataService struct {
	mock.Mock
}

// FindUserByEmail (Mocked)
func (m *MockDataService) FindUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

// ListEvents (Mocked)
func (m *MockDataService) ListEvents(start, end string) ([]models.Event, error) {
	args := m.Called(start, end)
	events, _ := args.Get(0).([]models.Event)
	return events, args.Error(1)
}

// CreateEvent (Mocked)
func (m *MockDataService) CreateEvent(input models.EventInput, createdBy int64) (*models.Event, error) {
	args := m.Called(input, createdBy)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

// UpdateEvent (Mocked)
func (m *MockDataService) UpdateEvent(id string, input models.EventInput) (*models.Event, error) {
	args := m.Called(id, input)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

// GetEvent (Mocked)
func (m *MockDataService) GetEvent(id string) (*models.Event, error) {
	args := m.Called(id)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

// SetEventPosted (Mocked)
func (m *MockDataService) SetEventPosted(id string, posted bool) (*models.Event, error) {
	args := m.Called(id, posted)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

// DeleteEvent (Mocked)
func (m *MockDataService) DeleteEvent(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
