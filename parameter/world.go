package parameter

// World geometry, independent of any viewport
const (
	WorldWidth  = 6000.0
	WorldHeight = 6000.0
)

// Obstacle layout
const (
	// ObstacleCount is the target number of obstacles per session
	ObstacleCount = 45

	ObstacleMinRadius = 60.0
	ObstacleMaxRadius = 150.0

	// ObstacleMargin keeps candidate centres away from the world edge
	ObstacleMargin = 200.0

	// ObstacleSafeRadius keeps the player's spawn point (world centre) clear
	ObstacleSafeRadius = 420.0

	// ObstacleGap is the minimum clearance between two obstacles
	ObstacleGap = 80.0

	// ObstacleAttemptsPerObstacle bounds generation at Count * N candidates
	ObstacleAttemptsPerObstacle = 25
)
