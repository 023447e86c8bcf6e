package services // Render use-case: expand directives, serve/store the partitioned cache.

import (
	"context"       // For Redis commands (need a Context).
	"crypto/sha256" // Content fingerprint for the cache key.
	"fmt"           // For formatting Redis cache keys.
	"time"          // For TTLs and the gate clock.

	"RambutanTask/core"
	"RambutanTask/models"
	"RambutanTask/utils/redislog"

	"github.com/redis/go-redis/v9" // Redis client for the render cache.
)

// RenderService expands rambutan directives in content for one viewer.
// viewerID == 0 means anonymous/unregistered (no valid token on the request).
type RenderService interface {
	Render(viewerID uint, content string) (*models.RenderResponse, error)
}

// renderService wires the pure core to the toggle store and the Redis cache.
type renderService struct {
	prefs      PreferenceService                 // stored toggle state (read-only here)
	rdb        *redis.Client                     // render cache (may be nil if cache disabled)
	log        *redislog.Logger                  // Redis logger (may be nil)
	loc        *time.Location                    // the one configured display zone
	now        func() time.Time                  // injectable clock for gate tests
	directives map[string]core.DirectiveHandler  // name -> handler, resolved at startup
}

// NewRenderService constructs the service; pass nil for clock to use time.Now.
func NewRenderService(prefs PreferenceService, rdb *redis.Client, rlog *redislog.Logger, loc *time.Location, clock func() time.Time) RenderService {
	if clock == nil {
		clock = time.Now
	}
	return &renderService{
		prefs:      prefs,
		rdb:        rdb,
		log:        rlog,
		loc:        loc,
		now:        clock,
		directives: core.Directives(), // plain map, built once
	}
}

// renderCacheTTL is how long expanded output stays in Redis before expiring.
const renderCacheTTL = 10 * time.Minute

// cacheKeyRender partitions stored output by the active flag. Same content,
// different flag -> different key, always. Sharing an entry across the two
// would leak one viewer's rendering to another.
func (s *renderService) cacheKeyRender(content string, active bool) string {
	sum := sha256.Sum256([]byte(content)) // fingerprint; the key must not carry raw content
	part := 0
	if active {
		part = 1
	}
	return fmt.Sprintf("render:%x:%d", sum[:16], part) // e.g., "render:9f86d0…:1"
}

// Render runs one request-scoped expansion.
//
// The active value is a lazy per-render flag: nothing is looked up for
// directive-free content (it stays on the default "false" partition), and
// content with directives resolves the stored toggle through the time gate
// exactly once, then reuses that value for the expansion AND the cache key.
func (s *renderService) Render(viewerID uint, content string) (*models.RenderResponse, error) {
	registered := viewerID != 0 // anonymous requests carry no viewer id

	flag := core.NewRenderFlag(func() bool {
		if !registered {
			return false // unregistered viewers never get the mode; skip the store read
		}
		toggle, err := s.prefs.GetToggle(viewerID)
		if err != nil {
			// Store trouble must not break the page; render inactive.
			if s.log != nil {
				s.log.Error("toggle read failed, rendering inactive", map[string]string{"user_id": fmt.Sprint(viewerID), "err": err.Error()})
			}
			return false
		}
		return core.IsActive(toggle, registered, s.loc, s.now())
	})

	// Decide the cache partition up front. Only content that actually has
	// directives forces the flag; everything else renders identically for
	// everyone and lives on the default (inactive) partition.
	active := false
	if core.HasDirectives(content) {
		active = flag.Value()
	}
	key := s.cacheKeyRender(content, active)

	// Try Redis first for speed.
	if s.rdb != nil {
		ctx := context.Background() // Context needed for Redis commands.
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil { // cache HIT -> serve stored output for this partition
			if s.log != nil {
				s.log.Info("render cache HIT", map[string]string{"key": key})
			}
			return &models.RenderResponse{
				Output:         val,
				Cached:         true,
				RambutanActive: active,
				ShowToggle:     registered,
			}, nil
		}
		if err == redis.Nil { // Key not present -> MISS.
			if s.log != nil {
				s.log.Warn("render cache MISS", map[string]string{"key": key})
			}
		} else if s.log != nil { // Some other Redis error occurred.
			s.log.Error("render cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	// Expand for real. The flag is already memoized (or still lazily false
	// for directive-free content), so Expand sees the same value the cache
	// key was built from.
	out := core.Expand(content, s.directives, flag)

	// Store result in cache for next time (best effort).
	if s.rdb != nil {
		ctx := context.Background()
		if err := s.rdb.Set(ctx, key, []byte(out), renderCacheTTL).Err(); err == nil {
			if s.log != nil {
				s.log.Info("render cache SET", map[string]string{"key": key, "ttl": renderCacheTTL.String()})
			}
		} else if s.log != nil {
			s.log.Error("render cache SET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	return &models.RenderResponse{
		Output:         out,
		Cached:         false,
		RambutanActive: active,
		ShowToggle:     registered,
	}, nil
}
