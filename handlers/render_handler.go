package handlers // Render endpoint: content in, expanded content out.

import (
	"net/http"

	"RambutanTask/models"
	"RambutanTask/services"

	"github.com/gin-gonic/gin"
)

// RenderHandler exposes directive expansion over HTTP.
type RenderHandler struct {
	svc services.RenderService
}

// NewRenderHandler constructs the handler.
func NewRenderHandler(svc services.RenderService) *RenderHandler {
	return &RenderHandler{svc: svc}
}

// Render handles POST /render. The route sits behind ViewerIdentity (not
// Auth), so anonymous requests land here too -- they just render with the
// mode off and without the toggle widget hint.
func (h *RenderHandler) Render(c *gin.Context) {
	var req models.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil { // content is required
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.svc.Render(currentUserID(c), req.Content) // uid 0 = anonymous
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
