package services

import (
	"testing"
	"time"

	"RambutanTask/core"
	"RambutanTask/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fresh toggle state relative to the fixed test clock (enabled one hour ago,
// same local day, so the gate says active)
var (
	testNow    = time.Date(2023, time.January, 10, 12, 0, 0, 0, time.UTC)
	freshState = core.ToggleState{Enabled: true, EnabledAt: testNow.Add(-time.Hour).Unix()}
)

func TestRenderService_ActiveRender_MissThenSet(t *testing.T) {
	prefs := new(mocks.PreferenceServiceMock)
	rdb, rmock := mocks.NewRedisMock()
	prefs.On("GetToggle", uint(1)).Return(freshState, nil)

	svc := NewRenderService(prefs, rdb, nil, time.UTC, fixedClock(testNow))

	content := "Profile: rambutan(Elton John)"
	expected := `Profile: Elton "[[Rambutan|Rambutan]]" John`
	key := svc.(*renderService).cacheKeyRender(content, true) // active partition

	rmock.ExpectGet(key).RedisNil()
	rmock.ExpectSet(key, []byte(expected), renderCacheTTL).SetVal("OK")

	resp, err := svc.Render(1, content)
	require.NoError(t, err)
	assert.Equal(t, expected, resp.Output)
	assert.False(t, resp.Cached)
	assert.True(t, resp.RambutanActive)
	assert.True(t, resp.ShowToggle) // registered viewer gets the widget hint

	assert.NoError(t, rmock.ExpectationsWereMet())
	prefs.AssertNumberOfCalls(t, "GetToggle", 1) // resolved exactly once for the whole render
}

func TestRenderService_CacheHit(t *testing.T) {
	prefs := new(mocks.PreferenceServiceMock)
	rdb, rmock := mocks.NewRedisMock()
	prefs.On("GetToggle", uint(1)).Return(freshState, nil)

	svc := NewRenderService(prefs, rdb, nil, time.UTC, fixedClock(testNow))

	content := "Profile: rambutan(Madonna)"
	key := svc.(*renderService).cacheKeyRender(content, true)
	rmock.ExpectGet(key).SetVal("cached output")

	resp, err := svc.Render(1, content)
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, "cached output", resp.Output)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

// The cache-key property from the contract: same content, different active
// value, never the same entry.
func TestRenderService_CachePartitioning(t *testing.T) {
	prefs := new(mocks.PreferenceServiceMock)
	rdb, rmock := mocks.NewRedisMock()
	prefs.On("GetToggle", uint(1)).Return(freshState, nil)

	svc := NewRenderService(prefs, rdb, nil, time.UTC, fixedClock(testNow))
	content := "Band page: rambutanband(The Strokes)"

	keyActive := svc.(*renderService).cacheKeyRender(content, true)
	keyInactive := svc.(*renderService).cacheKeyRender(content, false)
	assert.NotEqual(t, keyActive, keyInactive) // distinct partitions, always

	// Render once as the active viewer, once anonymously: two different keys
	// are consulted and written, no collision possible.
	activeOut := `Band page: The Strokes (formerly known as [[Rambutan|Rambutan]])`
	inactiveOut := "Band page: The Strokes"

	rmock.ExpectGet(keyActive).RedisNil()
	rmock.ExpectSet(keyActive, []byte(activeOut), renderCacheTTL).SetVal("OK")
	rmock.ExpectGet(keyInactive).RedisNil()
	rmock.ExpectSet(keyInactive, []byte(inactiveOut), renderCacheTTL).SetVal("OK")

	respA, err := svc.Render(1, content)
	require.NoError(t, err)
	respB, err := svc.Render(0, content) // anonymous
	require.NoError(t, err)

	assert.Equal(t, activeOut, respA.Output)
	assert.Equal(t, inactiveOut, respB.Output)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRenderService_Anonymous_NeverReadsToggle(t *testing.T) {
	prefs := new(mocks.PreferenceServiceMock)
	rdb, rmock := mocks.NewRedisMock()

	svc := NewRenderService(prefs, rdb, nil, time.UTC, fixedClock(testNow))
	content := "rambutan(Madonna)"
	key := svc.(*renderService).cacheKeyRender(content, false)

	rmock.ExpectGet(key).RedisNil()
	rmock.ExpectSet(key, []byte("Madonna"), renderCacheTTL).SetVal("OK")

	resp, err := svc.Render(0, content)
	require.NoError(t, err)
	assert.False(t, resp.RambutanActive)
	assert.False(t, resp.ShowToggle) // no widget for anonymous viewers
	prefs.AssertNotCalled(t, "GetToggle")
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRenderService_DirectiveFreeContent_SkipsToggleLookup(t *testing.T) {
	prefs := new(mocks.PreferenceServiceMock)
	rdb, rmock := mocks.NewRedisMock()

	svc := NewRenderService(prefs, rdb, nil, time.UTC, fixedClock(testNow))
	content := "Just an ordinary article."
	key := svc.(*renderService).cacheKeyRender(content, false) // default partition

	rmock.ExpectGet(key).RedisNil()
	rmock.ExpectSet(key, []byte(content), renderCacheTTL).SetVal("OK")

	resp, err := svc.Render(1, content) // registered viewer, but nothing to resolve
	require.NoError(t, err)
	assert.Equal(t, content, resp.Output)
	assert.False(t, resp.RambutanActive)
	prefs.AssertNotCalled(t, "GetToggle") // lazy: no directive, no store read
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRenderService_ToggleReadError_RendersInactive(t *testing.T) {
	prefs := new(mocks.PreferenceServiceMock)
	prefs.On("GetToggle", uint(1)).Return(core.ToggleState{}, assert.AnError)

	svc := NewRenderService(prefs, nil, nil, time.UTC, fixedClock(testNow)) // no cache either

	resp, err := svc.Render(1, "rambutan(Madonna)")
	require.NoError(t, err) // store trouble must not break the page
	assert.False(t, resp.RambutanActive)
	assert.Equal(t, "Madonna", resp.Output)
}

func TestRenderService_ExpiredToggle_RendersInactive(t *testing.T) {
	prefs := new(mocks.PreferenceServiceMock)
	yesterday := core.ToggleState{Enabled: true, EnabledAt: testNow.AddDate(0, 0, -1).Unix()}
	prefs.On("GetToggle", uint(1)).Return(yesterday, nil)

	svc := NewRenderService(prefs, nil, nil, time.UTC, fixedClock(testNow))

	resp, err := svc.Render(1, "rambutan(Elton John)")
	require.NoError(t, err)
	assert.False(t, resp.RambutanActive) // a midnight has passed since enabling
	assert.Equal(t, "Elton John", resp.Output)
}
