package parameter

// Auto-attack projectiles
const (
	ProjectileSpeed    = 500.0
	ProjectileRadius   = 16.0
	ProjectileLifetime = 2.0

	// MaxVolleyShots caps simultaneous projectiles per volley
	MaxVolleyShots = 5

	// VolleySpread is the angular gap between adjacent shots (radians)
	VolleySpread = 0.18
)

// Kill rewards
const (
	// KillXPBase + wave is granted directly on kill
	KillXPBase = 6
)

// Shockwave visual ring
const (
	ShockwaveRingDuration = 0.45
)
