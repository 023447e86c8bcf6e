// per-viewer key/value preference rows. The rambutan toggle lives here as two
// keys; the repo itself stays generic (get/set/delete a string by user+key).

package repositories

import (
	"RambutanTask/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository is the external preference store as the plugin sees
// it: read a key, write a key. The render path only ever reads -- expiry is
// never written back from this side (the stored flag stays true until the
// viewer flips it).
type PreferenceRepository interface {
	Get(userID uint, key string) (string, error) // gorm.ErrRecordNotFound when unset
	Set(userID uint, key, value string) error    // insert-or-update
	Delete(userID uint, key string) error        // remove the row (absent is fine)
}

type preferenceRepo struct{ db *gorm.DB }

// NewPreferenceRepository injects *gorm.DB and returns the interface.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepo{db: db}
}

// Get loads one preference value. Callers treat ErrRecordNotFound as
// "default" (e.g. rambutanmode off), not as a failure.
// Map conditions let GORM quote the column names per dialect ("key" is
// reserved-ish on some of them, so no hand-written quoting here).
func (r *preferenceRepo) Get(userID uint, key string) (string, error) {
	var p models.Preference
	if err := r.db.Where(map[string]any{"user_id": userID, "key": key}).First(&p).Error; err != nil {
		return "", err
	}
	return p.Value, nil
}

// Set upserts on the (user_id, key) unique index so enable/disable flips are
// a single statement on every dialect GORM supports.
func (r *preferenceRepo) Set(userID uint, key, value string) error {
	p := models.Preference{UserID: userID, Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&p).Error
}

// Delete removes the row; deleting an absent key is not an error.
func (r *preferenceRepo) Delete(userID uint, key string) error {
	return r.db.Where(map[string]any{"user_id": userID, "key": key}).
		Delete(&models.Preference{}).Error
}
