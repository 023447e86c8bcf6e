package global

const (
	AppVersion = "1.0.0" //plugin version shown in logs or the health endpoint

	// Context keys (avoid  using short unique strings)
	// Gin context key for storing the authenticated viewer ID.
	// Using a string constant reduces risk of typos and collisions.

	CtxUserIDKey = "uid"

	// Preference keys as stored in the preferences table.
	// These names are part of the contract with the client-side toggle widget,
	// so keep them stable.
	PrefKeyRambutanMode      = "rambutanmode"            // "1" when the viewer switched the mode on
	PrefKeyRambutanEnabledAt = "rambutanmode-enabled-at" // epoch seconds of the last enable
)
