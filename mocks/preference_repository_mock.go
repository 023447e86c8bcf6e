package mocks

import "github.com/stretchr/testify/mock"

// PreferenceRepositoryMock is a testify/mock for repositories.PreferenceRepository.
type PreferenceRepositoryMock struct{ mock.Mock }

func (m *PreferenceRepositoryMock) Get(userID uint, key string) (string, error) {
	args := m.Called(userID, key)
	return args.String(0), args.Error(1)
}

func (m *PreferenceRepositoryMock) Set(userID uint, key, value string) error {
	return m.Called(userID, key, value).Error(0)
}

func (m *PreferenceRepositoryMock) Delete(userID uint, key string) error {
	return m.Called(userID, key).Error(0)
}
