package routes // Router setup layer.

import ( // Imports used in the router.
	"time" // For JWT expiration + display zone types.

	"RambutanTask/handlers"    // Handler constructors.
	"RambutanTask/middlewares" // Logging & recovery & auth middlewares.
	"RambutanTask/services"    // Service interfaces.

	"github.com/gin-gonic/gin" // Gin router.
)

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, users services.UserService, prefs services.PreferenceService, render services.RenderService,
	jwtSecret string, jwtExp time.Duration, loc *time.Location) {
	// Attach standard middlewares globally.
	r.Use(middlewares.RequestLogger(), middlewares.Recovery()) // Access log + panic recovery.

	// Group API under /api/v1 for versioning.
	api := r.Group("/api/v1")

	// Construct handlers (injecting services + JWT parameters).
	uh := handlers.NewUserHandler(users, jwtSecret, jwtExp)
	ph := handlers.NewPreferenceHandler(prefs, loc)
	rh := handlers.NewRenderHandler(render)

	// Public auth endpoints (no JWT required).
	api.POST("/auth/register", uh.Register) // Register new viewer.
	api.POST("/auth/login", uh.Login)       // Login and get JWT.

	// Render is open to everyone; ViewerIdentity picks up a token when one
	// is sent, anonymous requests just render with rambutan mode off.
	api.POST("/render", middlewares.ViewerIdentity(jwtSecret), rh.Render)

	// Protected group (requires valid Authorization: Bearer <token>).
	protected := api.Group("/")
	protected.Use(middlewares.Auth(jwtSecret)) // JWT auth middleware.

	protected.GET("/me", uh.Me) // Current viewer.

	// The toggle itself; only registered viewers ever see these.
	protected.GET("/preferences/rambutanmode", ph.GetToggle)
	protected.PUT("/preferences/rambutanmode", ph.SetToggle)
}
