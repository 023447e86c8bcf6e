package mocks

import (
	"RambutanTask/core"

	"github.com/stretchr/testify/mock"
)

// PreferenceServiceMock is a testify/mock for services.PreferenceService.
type PreferenceServiceMock struct{ mock.Mock }

func (m *PreferenceServiceMock) GetToggle(userID uint) (core.ToggleState, error) {
	args := m.Called(userID)
	return args.Get(0).(core.ToggleState), args.Error(1)
}

func (m *PreferenceServiceMock) SetToggle(userID uint, enabled bool) (core.ToggleState, error) {
	args := m.Called(userID, enabled)
	return args.Get(0).(core.ToggleState), args.Error(1)
}
