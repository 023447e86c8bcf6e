package handlers // Toggle endpoints, protected: only registered viewers have the preference at all.

import (
	"net/http"
	"time"

	"RambutanTask/core"
	"RambutanTask/models"
	"RambutanTask/services"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler exposes the rambutanmode toggle over HTTP.
type PreferenceHandler struct {
	svc services.PreferenceService // stored toggle state
	loc *time.Location             // configured display zone, for the live verdict
}

// NewPreferenceHandler constructs the handler with its dependencies.
func NewPreferenceHandler(svc services.PreferenceService, loc *time.Location) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, loc: loc}
}

// GetToggle handles GET /preferences/rambutanmode (protected).
// Returns the stored state plus what the time gate says right now, so the
// widget can show "enabled but expired" honestly.
func (h *PreferenceHandler) GetToggle(c *gin.Context) {
	uid := currentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	state, err := h.svc.GetToggle(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToggleResponse{
		Enabled:   state.Enabled,
		EnabledAt: state.EnabledAt,
		Active:    core.IsActive(state, true, h.loc, time.Now()), // behind Auth -> registered
	})
}

// SetToggle handles PUT /preferences/rambutanmode (protected).
func (h *PreferenceHandler) SetToggle(c *gin.Context) {
	uid := currentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var req models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil { // pointer field, so enabled:false binds fine
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.svc.SetToggle(uid, *req.Enabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToggleResponse{
		Enabled:   state.Enabled,
		EnabledAt: state.EnabledAt,
		Active:    core.IsActive(state, true, h.loc, time.Now()),
	})
}
