package services

import (
	"testing"
	"time"

	"RambutanTask/core"
	"RambutanTask/global"
	"RambutanTask/mocks"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPreferenceService_GetToggle_NeverSet(t *testing.T) {
	repo := new(mocks.PreferenceRepositoryMock)
	repo.On("Get", uint(1), global.PrefKeyRambutanMode).Return("", gorm.ErrRecordNotFound)

	svc := NewPreferenceService(repo, nil, nil)
	state, err := svc.GetToggle(1)
	assert.NoError(t, err)
	assert.Equal(t, core.ToggleState{}, state) // off by default, no timestamp
}

func TestPreferenceService_GetToggle_EnabledWithTimestamp(t *testing.T) {
	repo := new(mocks.PreferenceRepositoryMock)
	repo.On("Get", uint(2), global.PrefKeyRambutanMode).Return("1", nil)
	repo.On("Get", uint(2), global.PrefKeyRambutanEnabledAt).Return("1673348400", nil)

	svc := NewPreferenceService(repo, nil, nil)
	state, err := svc.GetToggle(2)
	assert.NoError(t, err)
	assert.True(t, state.Enabled)
	assert.Equal(t, int64(1673348400), state.EnabledAt)
}

func TestPreferenceService_GetToggle_DisabledSkipsTimestamp(t *testing.T) {
	repo := new(mocks.PreferenceRepositoryMock)
	repo.On("Get", uint(3), global.PrefKeyRambutanMode).Return("0", nil)

	svc := NewPreferenceService(repo, nil, nil)
	state, err := svc.GetToggle(3)
	assert.NoError(t, err)
	assert.False(t, state.Enabled)
	repo.AssertNotCalled(t, "Get", uint(3), global.PrefKeyRambutanEnabledAt) // timestamp only read while enabled
}

func TestPreferenceService_GetToggle_MalformedTimestampFailsOpen(t *testing.T) {
	repo := new(mocks.PreferenceRepositoryMock)
	repo.On("Get", uint(4), global.PrefKeyRambutanMode).Return("1", nil)
	repo.On("Get", uint(4), global.PrefKeyRambutanEnabledAt).Return("not-a-number", nil)

	svc := NewPreferenceService(repo, nil, nil)
	state, err := svc.GetToggle(4)
	assert.NoError(t, err) // junk row must never break a render
	assert.True(t, state.Enabled)
	assert.Equal(t, int64(0), state.EnabledAt) // behaves as "absent" -> no expiry check
}

func TestPreferenceService_GetToggle_MissingTimestamp(t *testing.T) {
	repo := new(mocks.PreferenceRepositoryMock)
	repo.On("Get", uint(5), global.PrefKeyRambutanMode).Return("1", nil)
	repo.On("Get", uint(5), global.PrefKeyRambutanEnabledAt).Return("", gorm.ErrRecordNotFound)

	svc := NewPreferenceService(repo, nil, nil)
	state, err := svc.GetToggle(5)
	assert.NoError(t, err)
	assert.Equal(t, core.ToggleState{Enabled: true, EnabledAt: 0}, state)
}

func TestPreferenceService_SetToggle_EnableStampsNow(t *testing.T) {
	repo := new(mocks.PreferenceRepositoryMock)
	now := time.Date(2023, time.January, 10, 12, 0, 0, 0, time.UTC)

	repo.On("Set", uint(6), global.PrefKeyRambutanMode, "1").Return(nil)
	repo.On("Set", uint(6), global.PrefKeyRambutanEnabledAt, "1673352000").Return(nil) // now.Unix()

	svc := NewPreferenceService(repo, nil, fixedClock(now))
	state, err := svc.SetToggle(6, true)
	assert.NoError(t, err)
	assert.True(t, state.Enabled)
	assert.Equal(t, now.Unix(), state.EnabledAt)
	repo.AssertExpectations(t)
}

func TestPreferenceService_SetToggle_DisableWritesFlagOnly(t *testing.T) {
	repo := new(mocks.PreferenceRepositoryMock)
	repo.On("Set", uint(7), global.PrefKeyRambutanMode, "0").Return(nil)

	svc := NewPreferenceService(repo, nil, nil)
	state, err := svc.SetToggle(7, false)
	assert.NoError(t, err)
	assert.False(t, state.Enabled)
	repo.AssertNumberOfCalls(t, "Set", 1) // old stamp stays behind untouched
}
