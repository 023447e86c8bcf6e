// validates JWT and injects ->
// uid into Gin context for downstream handlers.

package middlewares

import (
	"net/http"
	"strconv" // Convert string claim to int when needed.

	"RambutanTask/global" // For the context key to store the viewer ID.

	"github.com/gin-gonic/gin"     // Gin context/request/response types
	"github.com/golang-jwt/jwt/v5" // JWT parsing and validation
)

// Auth returns a Gin middleware that validates "Authorization: Bearer <token>"
// and injects the viewer ID ("uid") into the request context if the token is valid.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware function closure captures jwtSecret.
		auth := c.GetHeader("Authorization") //read authorization header from request
		// Quick check : must start with "Bearer " and be long enough
		if len(auth) < 8 || auth[:7] != "Bearer " {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return //stop processing further handlers
		}
		uid, ok := parseBearer(auth[7:], jwtSecret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(global.CtxUserIDKey, uid)
		c.Next() // Continue to the actual handler.
	}
}

// ViewerIdentity is the optional flavor for the render endpoint: a valid
// token identifies the registered viewer, but a missing or bad one just
// means an anonymous render (no uid in context, handler sees viewer 0).
// It never aborts -- unregistered viewers can read pages too, they only
// never get rambutan mode.
func ViewerIdentity(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if len(auth) >= 8 && auth[:7] == "Bearer " {
			if uid, ok := parseBearer(auth[7:], jwtSecret); ok {
				c.Set(global.CtxUserIDKey, uid)
			}
		}
		c.Next()
	}
}

// parseBearer validates the raw token and extracts the subject (viewer ID).
func parseBearer(raw, jwtSecret string) (uint, bool) {
	// parse and validate token signature using the shared secret
	t, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil || !t.Valid {
		return 0, false
	}
	//we expect MapClaims (string any map) to extract stored fields
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	// extract subject (viewer ID) from the claims and normalize its type
	switch v := claims["sub"].(type) {
	case float64: // JSON numbers often decode to float64; cast to uint.
		return uint(v), true
	case string: // Sometimes IDs may be strings; try to parse.
		if n, err := strconv.Atoi(v); err == nil {
			return uint(n), true
		}
	}
	return 0, false
}
