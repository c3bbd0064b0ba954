package parameter

import "time"

// Camera follow
const (
	// CameraLerp is the vertical follow factor applied per 60 Hz frame
	CameraLerp = 0.05

	// CameraAnchor is the fraction of view height above the player the camera aims for
	CameraAnchor = 0.5

	// CameraDeadzone is the band around the anchor the player moves in before the camera follows
	CameraDeadzone = 200.0
)

// Shake feedback after stomps and springs
const (
	ShakeDuration = 100 * time.Millisecond
)
