package services // Toggle state use-cases: read the stored flags, flip them on viewer action.

import (
	"fmt"
	"strconv"
	"time"

	"RambutanTask/core"
	"RambutanTask/global"
	"RambutanTask/repositories"
	"RambutanTask/utils/redislog"
)

// PreferenceService reads and flips the per-viewer rambutan toggle.
// GetToggle only *reads*: an expired toggle still comes back Enabled=true
// with its old timestamp, and the time gate decides at render time. The
// stored flag is only ever changed here, by an explicit SetToggle.
type PreferenceService interface {
	GetToggle(userID uint) (core.ToggleState, error)
	SetToggle(userID uint, enabled bool) (core.ToggleState, error)
}

type preferenceService struct {
	repo repositories.PreferenceRepository // preference rows in the DB
	log  *redislog.Logger                  // Redis logger (may be nil)
	now  func() time.Time                  // injectable clock so tests pin the enable stamp
}

// NewPreferenceService constructs the service; pass nil for clock to use time.Now.
func NewPreferenceService(repo repositories.PreferenceRepository, rlog *redislog.Logger, clock func() time.Time) PreferenceService {
	if clock == nil {
		clock = time.Now // production default
	}
	return &preferenceService{repo: repo, log: rlog, now: clock}
}

// GetToggle loads the two stored keys into a ToggleState.
// Missing rows mean defaults (off / no timestamp). A malformed timestamp is
// treated as absent -- fail open toward "no expiry check" -- because a junk
// row must never break a render.
func (s *preferenceService) GetToggle(userID uint) (core.ToggleState, error) {
	var state core.ToggleState

	mode, err := s.repo.Get(userID, global.PrefKeyRambutanMode)
	if err != nil {
		if repositories.IsNotFound(err) {
			return state, nil // never set -> off, which is the default
		}
		if s.log != nil {
			s.log.Error("pref read error", map[string]string{"user_id": fmt.Sprint(userID), "err": err.Error()})
		}
		return state, err // real DB error -> propagate
	}
	state.Enabled = mode == "1"
	if !state.Enabled {
		return state, nil // timestamp is only meaningful while enabled
	}

	raw, err := s.repo.Get(userID, global.PrefKeyRambutanEnabledAt)
	if err != nil {
		if repositories.IsNotFound(err) {
			return state, nil // enabled with no timestamp -> no expiry check possible
		}
		return state, err
	}
	ts, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil || ts < 0 {
		// Unparseable stored value: log it and behave as if absent.
		if s.log != nil {
			s.log.Warn("pref enabled-at malformed", map[string]string{"user_id": fmt.Sprint(userID), "raw": raw})
		}
		return state, nil
	}
	state.EnabledAt = ts
	return state, nil
}

// SetToggle writes the flag and, when enabling, stamps the enable time with
// the current epoch seconds. Disabling leaves the old timestamp row behind
// (harmless: it is only read while the flag is "1").
func (s *preferenceService) SetToggle(userID uint, enabled bool) (core.ToggleState, error) {
	mode := "0"
	if enabled {
		mode = "1"
	}
	if err := s.repo.Set(userID, global.PrefKeyRambutanMode, mode); err != nil {
		if s.log != nil {
			s.log.Error("pref write error", map[string]string{"user_id": fmt.Sprint(userID), "err": err.Error()})
		}
		return core.ToggleState{}, err
	}

	state := core.ToggleState{Enabled: enabled}
	if enabled {
		state.EnabledAt = s.now().Unix()
		if err := s.repo.Set(userID, global.PrefKeyRambutanEnabledAt, strconv.FormatInt(state.EnabledAt, 10)); err != nil {
			return core.ToggleState{}, err
		}
	}

	if s.log != nil {
		s.log.Info("rambutanmode toggled", map[string]string{
			"user_id": fmt.Sprint(userID),
			"enabled": mode,
		})
	}
	return state, nil
}
