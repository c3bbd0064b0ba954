package parameter

// Logical play area in world units
const (
	ScreenWidth  = 480.0
	ScreenHeight = 800.0

	// GameZoom widens the camera view: view extent = screen extent / zoom
	GameZoom = 0.7
)

// Entity sizes
const (
	PlayerSize     = 20.0
	PlatformWidth  = 70.0
	PlatformHeight = 15.0
	EnemySize      = 12.0
	SpringWidth    = 15.0
	SpringHeight   = SpringWidth / 2

	// SafeMarginPad is added to half a platform width to form the play-area margin
	SafeMarginPad = 10.0
)

// Lanes
var (
	// LaneFractions are lane centers as fractions of ScreenWidth (left, center, right)
	LaneFractions = []float64{0.2, 0.5, 0.8}
)

// SafeLaneFraction is the minimum distance, as a fraction of ScreenWidth, between a trap and its paired platform
const SafeLaneFraction = 0.2
