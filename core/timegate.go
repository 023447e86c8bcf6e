// Place for pure domain logic (no Gin/GORM/Redis here -> easy to unit test).
// timegate decides whether rambutan mode is currently active for a viewer.

package core

import "time"

// ToggleState mirrors the two preference keys as the service layer reads them.
// EnabledAt == 0 means "no timestamp stored" (or an unparseable one; we fail
// open and treat both the same way).
type ToggleState struct {
	Enabled   bool  // the stored rambutanmode flag
	EnabledAt int64 // epoch seconds of the last enable; 0 = absent
}

// IsActive is the whole time gate: the mode is on only for registered viewers
// who enabled it since the most recent local midnight in the configured zone.
//
// Expiry is a read-time decision only. We never write the cleared flag back;
// the stored value stays true until the viewer flips it again, and every
// render just re-evaluates this function.
func IsActive(toggle ToggleState, registered bool, loc *time.Location, now time.Time) bool {
	if !registered || !toggle.Enabled { // unregistered viewers never get the mode
		return false
	}
	if toggle.EnabledAt == 0 { // no timestamp -> nothing to expire against
		return true
	}

	// Most recent local midnight at-or-before now, in the configured zone.
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	// Enabled strictly before that midnight -> at least one day boundary has
	// passed -> expired. Exactly at midnight counts as the new day (still on).
	enabledAt := time.Unix(toggle.EnabledAt, 0)
	return !enabledAt.Before(midnight)
}
