package handlers // Controller layer translates HTTP <-> service calls.

import (
	"net/http" // Status codes and HTTP primitives.
	"time"     // For passing JWT expiration to service login.

	"RambutanTask/global"   // Context key for the authenticated viewer.
	"RambutanTask/models"   // Request/response DTOs.
	"RambutanTask/services" // Use-case interfaces.

	"github.com/gin-gonic/gin" // Gin web framework.
)

// UserHandler bundles dependencies needed by the auth endpoints.
type UserHandler struct {
	svc        services.UserService // Injected business logic.
	jwtSecret  string               // JWT signing secret configured in main.
	jwtExpires time.Duration        // JWT validity duration.
}

// NewUserHandler constructs a handler for viewer auth with its dependencies.
func NewUserHandler(svc services.UserService, jwtSecret string, jwtExp time.Duration) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: jwtSecret, jwtExpires: jwtExp} // Return pointer for methods.
}

// Register handles POST /auth/register (public).
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest // Allocate request payload struct.
	if err := c.ShouldBindJSON(&req); err != nil { // Bind and validate JSON input.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // 400 if validation fails.
		return
	}
	u, err := h.svc.Register(req) // Delegate to service (hash + save).
	if err != nil { // Typically "email already exists".
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u) // 201 Created with viewer JSON.
}

// Login handles POST /auth/login (public).
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil { // Bind/validate JSON.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tok, err := h.svc.Login(req, h.jwtSecret, h.jwtExpires) // Validates + signs JWT.
	if err != nil { // Wrong credentials -> 401 Unauthorized.
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: tok}) // Return {"token": "..."}.
}

// Me handles GET /me (protected) and returns the current viewer.
func (h *UserHandler) Me(c *gin.Context) {
	uid := currentUserID(c) // Set by the Auth middleware.
	if uid == 0 {           // Should not happen behind Auth.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	u, err := h.svc.GetByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// currentUserID reads the viewer id the auth middlewares stored (0 if none).
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(global.CtxUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
