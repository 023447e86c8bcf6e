package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"errors" // For returning friendly domain errors (e.g., "email already exists").
	"fmt"    // For log meta formatting.
	"time"   // For JWT expiration.

	"RambutanTask/core"           // Domain helpers; e.g., NormalizeName.
	"RambutanTask/models"         // DTOs and User model.
	"RambutanTask/repositories"   // Repository interfaces.
	"RambutanTask/utils"          // HashPassword / CheckPassword helpers.
	"RambutanTask/utils/redislog" // Redis logger.

	"github.com/golang-jwt/jwt/v5" // JWT token creation/signing.
)

// UserService covers viewer identity: sign-up, login, lookup. The render
// path never calls in here -- a valid JWT on the request is what
// "registered" means to the time gate.
type UserService interface {
	Register(req models.RegisterRequest) (*models.User, error)                          // Public register.
	Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) // Login and get JWT.
	GetByID(id uint) (*models.User, error)                                              // Fetch one; used by /me.
}

// userService is the concrete implementation; it depends on repo + Redis logger.
type userService struct {
	repo repositories.UserRepository // Data access abstraction.
	log  *redislog.Logger            // Redis logger (may be nil if not configured).
}

// NewUserService constructs a service with all dependencies injected.
func NewUserService(repo repositories.UserRepository, rlog *redislog.Logger) UserService {
	return &userService{repo: repo, log: rlog} // Return a struct implementing the interface.
}

// Register creates a new viewer (after checking email uniqueness) and hashes the password.
func (s *userService) Register(req models.RegisterRequest) (*models.User, error) {
	// Check for existing email to maintain uniqueness.
	if _, err := s.repo.FindByEmail(req.Email); err == nil { // If no error, a row with that email exists.
		if s.log != nil {
			s.log.Warn("register email exists", map[string]string{"email": req.Email})
		}
		return nil, errors.New("email already exists") // Friendly message for the handler.
	}

	// Hash the incoming plaintext password before saving.
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if s.log != nil {
			s.log.Error("register hash error", map[string]string{"email": req.Email, "err": err.Error()})
		}
		return nil, err
	}

	// Build the new User entity (domain-normalized name).
	u := &models.User{
		Name:     core.NormalizeName(req.Name), // Apply naming rules (capitalize).
		Email:    req.Email,
		Password: hash, // Store hashed password, not plaintext.
	}

	// Insert into the database.
	if err := s.repo.Create(u); err != nil { // Will set u.ID on success.
		if s.log != nil {
			s.log.Error("register db create error", map[string]string{"email": req.Email, "err": err.Error()})
		}
		return nil, err
	}

	if s.log != nil {
		s.log.Info("register success", map[string]string{"user_id": fmt.Sprint(u.ID), "email": u.Email})
	}
	return u, nil // Return created viewer (password omitted in JSON due to json:"-").
}

// Login validates credentials and issues a signed JWT.
func (s *userService) Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	// Look up by email; return invalid on any error (don't leak info).
	u, err := s.repo.FindByEmail(req.Email)
	if err != nil { // If not found or DB error, treat as invalid.
		if s.log != nil {
			s.log.Warn("login user not found", map[string]string{"email": req.Email})
		}
		return "", errors.New("invalid credentials")
	}
	// Verify supplied password against stored bcrypt hash.
	if !utils.CheckPassword(u.Password, req.Password) {
		if s.log != nil {
			s.log.Warn("login wrong password", map[string]string{"email": req.Email})
		}
		return "", errors.New("invalid credentials")
	}

	// Build JWT claims (subject, issued-at, expiration, plus optional email).
	claims := jwt.MapClaims{
		"sub": u.ID,                        // Subject: viewer ID.
		"exp": time.Now().Add(exp).Unix(),  // Expiration time (unix seconds).
		"iat": time.Now().Unix(),           // Issued-at (unix seconds).
		"eml": u.Email,                     // Optional claim to carry email.
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		if s.log != nil {
			s.log.Error("login token sign error", map[string]string{"email": u.Email, "err": err.Error()})
		}
		return "", err
	}

	if s.log != nil {
		s.log.Info("login success", map[string]string{"user_id": fmt.Sprint(u.ID), "email": u.Email})
	}
	return signed, nil // Return compact JWT string.
}

// GetByID returns a viewer straight from the DB.
func (s *userService) GetByID(id uint) (*models.User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		if s.log != nil {
			s.log.Error("db fetch error in GetByID", map[string]string{"user_id": fmt.Sprint(id), "err": err.Error()})
		}
		return nil, err
	}
	return u, nil
}
