// repository hides GORM details behind an interface—DB-agnostic.
// Data-access layer. Only talks to the database (via GORM here), no HTTP/JSON.

package repositories

import (
	"errors"

	"RambutanTask/models" // Import our User model to map results.

	"gorm.io/gorm" // GORM DB type is injected so repos are testable/mocked.
)

// UserRepository defines the viewer operations the service layer expects.
// Depending on interfaces (not concrete types) helps testability and swapping
// implementations. The plugin only needs the auth subset: create on register,
// email lookup on login, id lookup for /me and the render path.
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
}

// userRepo is a private struct implementing UserRepository.
// It holds a *gorm.DB that can connect to any dialect (mysql/postgres/sqlite/sqlserver).
type userRepo struct{ db *gorm.DB }

// NewUserRepository is a constructor that injects *gorm.DB and returns an interface.
// This allows main.go to wire dependencies without exposing concrete types to other layers.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db} // Simple constructor; easy to swap in tests.
}

// Create inserts a new viewer row using GORM's Create method.
func (r *userRepo) Create(u *models.User) error {
	return r.db.Create(u).Error // .Error exposes any DB error to caller.
}

// FindByEmail queries for a viewer with the given email.
// Parameterized query (WHERE email = ?) which GORM compiles safely for the dialect.
func (r *userRepo) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil // Return pointer to the found user.
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil { // First(&u, id) loads where primary key = id.
		return nil, err
	}
	return &u, nil
}

// Helper: IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) // True if wrapped or direct ErrRecordNotFound.
}
